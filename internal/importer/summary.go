package importer

// Outcome is what an import did with a single row.
type Outcome string

const (
	Created Outcome = "created"
	Updated Outcome = "updated"
	Skipped Outcome = "skipped"
	Failed  Outcome = "failed"
)

// RowError explains a failed row.
type RowError struct {
	Row     int    `json:"row"`
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

func (e RowError) Error() string {
	if e.Field != "" {
		return e.Field + ": " + e.Message
	}
	return e.Message
}

// Summary is the result returned to the admin after an import.
type Summary struct {
	Kind    Kind       `json:"kind"`
	DryRun  bool       `json:"dry_run"`
	Total   int        `json:"total"`
	Created int        `json:"created"`
	Updated int        `json:"updated"`
	Skipped int        `json:"skipped"`
	Failed  int        `json:"failed"`
	Errors  []RowError `json:"errors"`
}

func NewSummary(kind Kind, dryRun bool) *Summary {
	return &Summary{Kind: kind, DryRun: dryRun, Errors: []RowError{}}
}

// Record tallies one row.
func (s *Summary) Record(o Outcome) {
	s.Total++
	switch o {
	case Created:
		s.Created++
	case Updated:
		s.Updated++
	case Skipped:
		s.Skipped++
	case Failed:
		s.Failed++
	}
}

// Fail tallies a failed row and keeps its reason.
func (s *Summary) Fail(e RowError) {
	s.Record(Failed)
	s.Errors = append(s.Errors, e)
}
