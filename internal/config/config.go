package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	// Project settings
	ProjectPath  string
	FixturesPath string

	// Generated harness settings
	HarnessFile    string
	HarnessPackage string
	ParserImport   string
	FixtureExt     string

	// Report settings
	ReportDir  string
	ReportFile string

	// Directories to ignore when scanning
	SkipDirs []string

	// Command flags
	Flags Flags
}

// Flags holds command-line flags
type Flags struct {
	FixturesPath string
	HarnessFile  string
	Package      string
	ParserImport string
	NameFilter   string
	DryRun       bool
	Cases        bool
}

// New creates a new Config with defaults
func New() *Config {
	cfg := &Config{
		ProjectPath:    DefaultProjectPath,
		FixturesPath:   DefaultFixturesPath,
		HarnessFile:    DefaultHarnessFile,
		HarnessPackage: DefaultHarnessPackage,
		ParserImport:   DefaultParserImport,
		FixtureExt:     DefaultFixtureExt,
		ReportDir:      DefaultReportDir,
		ReportFile:     DefaultReportFile,
	}
	cfg.SkipDirs = make([]string, len(DefaultSkipDirs))
	copy(cfg.SkipDirs, DefaultSkipDirs)
	return cfg
}

// LoadEnv applies overrides from a .env file in the project root, if one
// exists. Flags still win over env values.
func (c *Config) LoadEnv() {
	_ = godotenv.Load(filepath.Join(c.ProjectPath, ".env"))

	if v := os.Getenv("NTC_FIXTURES_DIR"); v != "" {
		c.FixturesPath = v
	}
	if v := os.Getenv("NTC_HARNESS_FILE"); v != "" {
		c.HarnessFile = v
	}
	if v := os.Getenv("NTC_PARSER_IMPORT"); v != "" {
		c.ParserImport = v
	}
	if v := os.Getenv("NTC_REPORT_DIR"); v != "" {
		c.ReportDir = v
	}
}

// GetFixturesPath returns the fixture root, using the flag if provided
func (c *Config) GetFixturesPath() string {
	if c.Flags.FixturesPath != "" {
		return c.resolve(c.Flags.FixturesPath)
	}
	return c.resolve(c.FixturesPath)
}

// GetHarnessFile returns the generated suite path, using the flag if provided
func (c *Config) GetHarnessFile() string {
	if c.Flags.HarnessFile != "" {
		return c.resolve(c.Flags.HarnessFile)
	}
	return c.resolve(c.HarnessFile)
}

// GetHarnessPackage returns the generated package name, using the flag if provided
func (c *Config) GetHarnessPackage() string {
	if c.Flags.Package != "" {
		return c.Flags.Package
	}
	return c.HarnessPackage
}

// GetParserImport returns the subject-parser import path, using the flag if provided
func (c *Config) GetParserImport() string {
	if c.Flags.ParserImport != "" {
		return c.Flags.ParserImport
	}
	return c.ParserImport
}

// GetReportPath returns the full path to the report JSON file. Resolves to
// an absolute path so convert, stats and review always read/write the same
// file regardless of cwd.
func (c *Config) GetReportPath() string {
	p := filepath.Join(c.ProjectPath, c.ReportDir, c.ReportFile)
	if abs, err := filepath.Abs(p); err == nil {
		return abs
	}
	return p
}

// GetFixtureBase returns the fixture root as the generated suite will see
// it: relative to the harness file's directory where possible, slash
// separated for the generated source.
func (c *Config) GetFixtureBase() string {
	rel, err := filepath.Rel(filepath.Dir(c.GetHarnessFile()), c.GetFixturesPath())
	if err != nil {
		return filepath.ToSlash(c.GetFixturesPath())
	}
	return filepath.ToSlash(rel)
}

func (c *Config) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.ProjectPath, path)
}
