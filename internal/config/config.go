package config

import (
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"

	"enumevent-generator/internal/decl"
	"enumevent-generator/internal/gen"
	"enumevent-generator/internal/plan"
)

// EnvPrefix prefixes every environment variable the generator reads.
const EnvPrefix = "ENUMEVENT_"

// Flag names shared by the commands that generate or load code.
const (
	FlagOutputDir     = "output-dir"
	FlagPackagePath   = "package-path"
	FlagRuntimeImport = "runtime-import"
	FlagEntityType    = "entity-type"
	FlagFileSuffix    = "file-suffix"
	FlagComments      = "comments"
	FlagAssertions    = "assertions"
)

// Config holds the resolved settings of one run.
type Config struct {
	// OutputDir is the directory generated packages are written under.
	OutputDir string
	// PackagePath is the import path corresponding to OutputDir. When set,
	// generated packages are loaded by import path instead of directory.
	PackagePath string
	// RuntimeImport is the import path of the event contract package.
	RuntimeImport string
	// EntityType is the Go type of entity targets. Empty means the Entity
	// type of the runtime package.
	EntityType string
	// FileSuffix names generated files: <namespace><suffix>.
	FileSuffix string
	// Comments enables doc comments on generated declarations.
	Comments bool
	// Assertions enables compile-time interface assertions.
	Assertions bool
}

// LookupFunc looks up an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Default returns the built-in configuration.
func Default() Config {
	gc := gen.DefaultGeneratorConfig()

	return Config{
		OutputDir:     gc.OutputDir,
		RuntimeImport: plan.DefaultRuntimeImport,
		FileSuffix:    gc.FileSuffix,
		Comments:      gc.GenerateComments,
		Assertions:    gc.Assertions,
	}
}

// Resolve layers the declaration file options, the environment and the
// changed flags of fs over the defaults. A nil lookup reads the process
// environment; a nil fs applies no flags.
func Resolve(opts decl.Options, fs *pflag.FlagSet, lookup LookupFunc) (Config, error) {
	if lookup == nil {
		lookup = os.LookupEnv
	}

	cfg := Default()
	cfg.ApplyOptions(opts)

	if err := cfg.ApplyEnv(lookup); err != nil {
		return cfg, err
	}

	if fs != nil {
		if err := cfg.ApplyFlags(fs); err != nil {
			return cfg, err
		}
	}

	return cfg, nil
}

// ApplyOptions copies the non-empty options of a declaration file.
func (c *Config) ApplyOptions(opts decl.Options) {
	setString(&c.OutputDir, opts.OutputDir)
	setString(&c.PackagePath, opts.PackagePath)
	setString(&c.RuntimeImport, opts.RuntimeImport)
	setString(&c.EntityType, opts.EntityType)
}

// ApplyEnv reads ENUMEVENT_OUTPUT_DIR, ENUMEVENT_PACKAGE_PATH,
// ENUMEVENT_RUNTIME_IMPORT, ENUMEVENT_ENTITY_TYPE, ENUMEVENT_FILE_SUFFIX,
// ENUMEVENT_COMMENTS and ENUMEVENT_ASSERTIONS.
func (c *Config) ApplyEnv(lookup LookupFunc) error {
	strs := map[string]*string{
		"OUTPUT_DIR":     &c.OutputDir,
		"PACKAGE_PATH":   &c.PackagePath,
		"RUNTIME_IMPORT": &c.RuntimeImport,
		"ENTITY_TYPE":    &c.EntityType,
		"FILE_SUFFIX":    &c.FileSuffix,
	}
	for name, dst := range strs {
		if v, ok := lookup(EnvPrefix + name); ok {
			setString(dst, v)
		}
	}

	bools := []struct {
		name string
		dst  *bool
	}{
		{"COMMENTS", &c.Comments},
		{"ASSERTIONS", &c.Assertions},
	}
	for _, b := range bools {
		v, ok := lookup(EnvPrefix + b.name)
		if !ok || v == "" {
			continue
		}

		parsed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s%s=%q: %w", EnvPrefix, b.name, v, err)
		}

		*b.dst = parsed
	}

	return nil
}

// RegisterFlags adds the configuration flags to fs. Flag defaults are
// only shown in help; unchanged flags never override lower layers.
func RegisterFlags(fs *pflag.FlagSet) {
	def := Default()

	fs.StringP(FlagOutputDir, "o", def.OutputDir, "directory generated packages are written under")
	fs.String(FlagPackagePath, "", "import path of the output directory")
	fs.String(FlagRuntimeImport, def.RuntimeImport, "import path of the event contract package")
	fs.String(FlagEntityType, "", "Go type of entity targets (default <runtime>.Entity)")
	fs.String(FlagFileSuffix, def.FileSuffix, "suffix of generated file names")
	fs.Bool(FlagComments, def.Comments, "emit doc comments on generated declarations")
	fs.Bool(FlagAssertions, def.Assertions, "emit compile-time interface assertions")
}

// ApplyFlags copies the flags of fs the user set explicitly.
func (c *Config) ApplyFlags(fs *pflag.FlagSet) error {
	strs := map[string]*string{
		FlagOutputDir:     &c.OutputDir,
		FlagPackagePath:   &c.PackagePath,
		FlagRuntimeImport: &c.RuntimeImport,
		FlagEntityType:    &c.EntityType,
		FlagFileSuffix:    &c.FileSuffix,
	}
	for name, dst := range strs {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}

		v, err := fs.GetString(name)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", name, err)
		}

		*dst = v
	}

	bools := map[string]*bool{
		FlagComments:   &c.Comments,
		FlagAssertions: &c.Assertions,
	}
	for name, dst := range bools {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}

		v, err := fs.GetBool(name)
		if err != nil {
			return fmt.Errorf("reading --%s: %w", name, err)
		}

		*dst = v
	}

	return nil
}

// Plan returns the planning configuration.
func (c Config) Plan() plan.Config {
	return plan.Config{
		RuntimeImport: c.RuntimeImport,
		EntityType:    c.EntityType,
	}
}

// Generator returns the code generation configuration.
func (c Config) Generator() gen.GeneratorConfig {
	return gen.GeneratorConfig{
		OutputDir:        c.OutputDir,
		FileSuffix:       c.FileSuffix,
		GenerateComments: c.Comments,
		Assertions:       c.Assertions,
	}
}

// PackagePattern returns the go/packages pattern of the package generated
// for namespace.
func (c Config) PackagePattern(namespace string) string {
	if c.PackagePath != "" {
		return path.Join(c.PackagePath, namespace)
	}

	dir := filepath.Join(c.OutputDir, namespace)
	if filepath.IsAbs(dir) {
		return dir
	}

	return "./" + filepath.ToSlash(dir)
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
