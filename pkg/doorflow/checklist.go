package doorflow

import "github.com/sealteck/doortrack/internal/apperror"

// ChecksSummary is the completion ratio of one inspection's checklist.
type ChecksSummary struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

func (s ChecksSummary) AllChecked() bool {
	return s.Completed >= s.Total
}

// CompletionPolicy decides whether an inspection may be completed with
// unchecked items remaining. The historical behavior is permissive: the
// summary is reported but never gates completion.
type CompletionPolicy struct {
	RequireAllChecks bool
}

// ValidateCompletion returns an InvalidStateError when the policy requires a
// fully checked list and items remain open.
func (p CompletionPolicy) ValidateCompletion(summary ChecksSummary) error {
	if p.RequireAllChecks && !summary.AllChecked() {
		return apperror.InvalidState("checklist incomplete: %d of %d items checked", summary.Completed, summary.Total)
	}
	return nil
}
