package cli

import "ntc/internal/config"

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

// ToConfigFlags converts CLI flags to config flags
func (f *Flags) ToConfigFlags() config.Flags {
	return config.Flags{
		FixturesPath: f.FixturesPath,
		HarnessFile:  f.HarnessFile,
		Package:      f.Package,
		ParserImport: f.ParserImport,
		NameFilter:   f.NameFilter,
		DryRun:       f.DryRun,
		Cases:        f.Cases,
	}
}
