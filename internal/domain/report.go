package domain

// ReportMeta contains metadata about a conversion run
type ReportMeta struct {
	FilesFound      int     `json:"files_found"`
	FilesSkipped    int     `json:"files_skipped"`
	CasesFound      int     `json:"cases_found"`
	CasesFiltered   int     `json:"cases_filtered"`
	FixturesEmitted int     `json:"fixtures_emitted"`
	Duplicates      int     `json:"duplicates"`
	DryRun          bool    `json:"dry_run,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// SkippedFile records a fixture file whose section count did not fit the
// triple shape
type SkippedFile struct {
	Path     string `json:"path"`
	Sections int    `json:"sections"`
}

// DuplicateWarning records two fixture files whose cases sanitize to the
// same harness identifier
type DuplicateWarning struct {
	Identifier string `json:"identifier"`
	Path       string `json:"path"`
	FirstPath  string `json:"first_path"`
}

// Report is the complete output structure for a conversion run
type Report struct {
	Meta     ReportMeta         `json:"meta"`
	Entries  []Entry            `json:"entries"`
	Skips    []SkippedFile      `json:"skips,omitempty"`
	Warnings []DuplicateWarning `json:"warnings,omitempty"`
}
