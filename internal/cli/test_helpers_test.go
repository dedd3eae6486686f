package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// runCLI executes a fresh root command and returns what it wrote.
func runCLI(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	rootCmd := newRootCmd()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)

	err := rootCmd.Execute()

	return stdout.String(), stderr.String(), err
}

// writeDeclaration writes a declaration file into a temporary directory.
func writeDeclaration(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "events.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

// clearEnv unsets the configuration environment for the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, name := range []string{
		"OUTPUT_DIR", "PACKAGE_PATH", "RUNTIME_IMPORT", "ENTITY_TYPE",
		"FILE_SUFFIX", "COMMENTS", "ASSERTIONS",
	} {
		t.Setenv("ENUMEVENT_"+name, "")
	}
}
