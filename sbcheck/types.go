package sbcheck

// Result is the raw answer of one lookup.
type Result struct {
	StatusCode int
	Body       []byte
	URL        string
}

// Outcome classifies a Result.
type Outcome int

const (
	OutcomeSafe Outcome = iota
	OutcomeFlagged
	OutcomeBadRequest
	OutcomeNoResponse
	OutcomeUnexpected
)

// Verdict is what gets reported to the user for a Result.
type Verdict struct {
	Outcome    Outcome
	StatusCode int
	// Label is "safe" or the label sent back by the service, e.g. "malware".
	// Empty when the outcome carries no safety verdict.
	Label      string
	// Message is the status line to print.
	Message    string
	// Detail summarises the body of a response that carries no verdict.
	Detail     string
}

// HasLabel reports whether the verdict says anything about the url's safety.
func (v Verdict) HasLabel() bool {
	return v.Outcome == OutcomeSafe || v.Outcome == OutcomeFlagged
}
