package domain

// Entry is one row of the generated harness table
type Entry struct {
	Identifier    string `json:"identifier"`
	FixturePath   string `json:"fixture_path"`
	ExpectsErrors bool   `json:"expects_errors"`
}
