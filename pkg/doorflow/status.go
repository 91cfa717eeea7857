// Package doorflow is the pure door lifecycle engine: status enums, the
// legal-transition table, serial/drawing numbering and checklist policy.
// It has no storage or transport dependencies so every rule is unit-testable.
package doorflow

import "github.com/sealteck/doortrack/internal/apperror"

// InspectionStatus is the door-level inspection progress.
type InspectionStatus int

const (
	InspectionPending InspectionStatus = iota
	InspectionInProgress
	InspectionCompleted
)

func (s InspectionStatus) String() string {
	switch s {
	case InspectionPending:
		return "pending"
	case InspectionInProgress:
		return "in_progress"
	case InspectionCompleted:
		return "completed"
	}
	return "unknown"
}

// ParseInspectionStatus maps the wire name of a status back to its value.
func ParseInspectionStatus(s string) (InspectionStatus, error) {
	for _, status := range []InspectionStatus{InspectionPending, InspectionInProgress, InspectionCompleted} {
		if status.String() == s {
			return status, nil
		}
	}
	return 0, apperror.Validation("unknown inspection status %q", s)
}

// CertificationStatus is the door-level certification decision state.
type CertificationStatus int

const (
	CertificationPending CertificationStatus = iota
	CertificationUnderReview
	CertificationCertified
	CertificationRejected
)

func (s CertificationStatus) String() string {
	switch s {
	case CertificationPending:
		return "pending"
	case CertificationUnderReview:
		return "under_review"
	case CertificationCertified:
		return "certified"
	case CertificationRejected:
		return "rejected"
	}
	return "unknown"
}

// ParseCertificationStatus maps the wire name of a status back to its value.
func ParseCertificationStatus(s string) (CertificationStatus, error) {
	for _, status := range []CertificationStatus{CertificationPending, CertificationUnderReview, CertificationCertified, CertificationRejected} {
		if status.String() == s {
			return status, nil
		}
	}
	return 0, apperror.Validation("unknown certification status %q", s)
}

// InspectionRecordStatus is the status of one inspection attempt, as opposed
// to the door-level InspectionStatus. A superseded inspection was once
// completed but has been invalidated by a re-inspection cycle after rejection.
type InspectionRecordStatus int

const (
	InspectionRecordInProgress InspectionRecordStatus = iota
	InspectionRecordCompleted
	InspectionRecordSuperseded
)

func (s InspectionRecordStatus) String() string {
	switch s {
	case InspectionRecordInProgress:
		return "in_progress"
	case InspectionRecordCompleted:
		return "completed"
	case InspectionRecordSuperseded:
		return "superseded"
	}
	return "unknown"
}
