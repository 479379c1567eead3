package config

const (
	// DefaultProjectPath is the default project path
	DefaultProjectPath = "."
	// DefaultFixturesPath is where the corpus .test files live, relative to the project
	DefaultFixturesPath = "tests/fixtures/nikic"
	// DefaultHarnessFile is where the generated suite is written, relative to the project
	DefaultHarnessFile = "tests/nikic_gen_test.go"
	// DefaultHarnessPackage is the package clause of the generated suite
	DefaultHarnessPackage = "tests"
	// DefaultParserImport is the import path of the subject parser package
	DefaultParserImport = "github.com/jorgsowa/php-parser/parser"
	// DefaultFixtureExt is the extension of emitted source fixtures
	DefaultFixtureExt = "php"
	// DefaultReportDir is the default report directory
	DefaultReportDir = "storage"
	// DefaultReportFile is the default report file name
	DefaultReportFile = "convert-report.json"
)

// DefaultSkipDirs are the directories to ignore when scanning for fixtures
var DefaultSkipDirs = []string{
	"vendor",
	"node_modules",
	"testdata",
}
