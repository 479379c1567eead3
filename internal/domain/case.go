package domain

// FixtureFile is one .test corpus file discovered under the fixture root
type FixtureFile struct {
	Path    string // Full path to the fixture file
	RelPath string // Path relative to the fixture root, slash-separated
	Base    string // RelPath without the .test extension
}

// Case is one (title, code, expected output) triple extracted from a fixture file
type Case struct {
	Title         string // Last non-blank line of the title section
	Code          string // Source code, written verbatim to the emitted fixture
	RawOutput     string // Expected-output section as found in the file
	ExpectsErrors bool   // Whether the expected output denotes a parse failure
}
