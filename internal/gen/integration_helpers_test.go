package gen

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// runExampleIntegrationTest generates the declaration of examples/<name>
// with the CLI, checks the result and runs the example's consumer tests.
func runExampleIntegrationTest(t *testing.T, exampleName string) {
	t.Helper()

	if testing.Short() {
		t.Skip("runs the go command")
	}

	repoRoot, err := filepath.Abs(filepath.Join("..", ".."))
	if err != nil {
		t.Fatalf("repo root: %v", err)
	}

	exampleDir := filepath.Join(repoRoot, "examples", exampleName)
	outDir := filepath.Join(exampleDir, "generated")
	declaration := filepath.Join(exampleDir, "events.yaml")

	// Ensure a clean output dir so the test is repeatable.
	_ = os.RemoveAll(outDir)

	run := func(step string, args ...string) {
		t.Helper()

		cmd := exec.CommandContext(t.Context(), "go", args...)
		cmd.Dir = repoRoot
		cmd.Env = append(os.Environ(), "ENUMEVENT_OUTPUT_DIR=", "ENUMEVENT_PACKAGE_PATH=")

		b, err := cmd.CombinedOutput()
		if err == nil {
			return
		}

		// Best-effort: dump whatever got generated for easier debugging.
		_ = filepath.WalkDir(outDir, func(p string, d os.DirEntry, werr error) error {
			if werr != nil || d.IsDir() {
				return nil
			}

			if fb, rerr := os.ReadFile(p); rerr == nil {
				t.Logf("generated file %s:\n%s", p, string(fb))
			}

			return nil
		})

		t.Fatalf("%s failed: %v\n%s", step, err, string(b))
	}

	run("gen", "run", "./cmd/enumevent-generator", "gen", declaration, "-o", outDir)
	run("check", "run", "./cmd/enumevent-generator", "check", declaration)
	run("example tests", "test", "-tags", "enumevent_examples", "-count=1", "./examples/"+exampleName+"/...")
}
