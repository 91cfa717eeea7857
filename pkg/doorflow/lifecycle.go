package doorflow

import (
	"github.com/sealteck/doortrack/internal/apperror"
)

// DoorState is the pair of door-level statuses the lifecycle operates on.
type DoorState struct {
	Inspection    InspectionStatus
	Certification CertificationStatus
}

func (s DoorState) String() string {
	return s.Inspection.String() + "/" + s.Certification.String()
}

// Event is a lifecycle trigger against a door.
type Event int

const (
	// EventStartInspection opens a new inspection. Illegal while one is in
	// progress, except on a rejected door where re-inspection always wins and
	// prior inspections are superseded by the caller.
	EventStartInspection Event = iota
	// EventCompleteInspection closes the in-progress inspection. On a rejected
	// door this also clears the rejection so the door re-enters the review queue.
	EventCompleteInspection
	// EventOpenReview marks that an engineer has opened the door for a decision.
	EventOpenReview
	// EventCertify records the engineer approval.
	EventCertify
	// EventReject records the engineer rejection and resets the door for
	// re-inspection.
	EventReject
	// EventDeleteOnlyInspection is the administrative removal of a door's only
	// inspection, which leaves the door never-inspected again.
	EventDeleteOnlyInspection
	// EventDeleteCertification is the administrative compensating action that
	// rolls certification back to pending. It never resurrects a rejection.
	EventDeleteCertification
)

func (e Event) String() string {
	switch e {
	case EventStartInspection:
		return "start_inspection"
	case EventCompleteInspection:
		return "complete_inspection"
	case EventOpenReview:
		return "open_review"
	case EventCertify:
		return "certify"
	case EventReject:
		return "reject"
	case EventDeleteOnlyInspection:
		return "delete_only_inspection"
	case EventDeleteCertification:
		return "delete_certification"
	}
	return "unknown"
}

// Transition applies one lifecycle event to a door state and returns the new
// state. Illegal transitions return an InvalidStateError and leave the caller
// with nothing to persist; callers never mutate on error.
func Transition(state DoorState, event Event) (DoorState, error) {
	switch event {
	case EventStartInspection:
		// A rejected door may always be re-inspected, even if a stale
		// inspection is still open; the storage layer supersedes it.
		if state.Inspection == InspectionInProgress && state.Certification != CertificationRejected {
			return state, apperror.InvalidState("an inspection is already in progress for this door")
		}
		if state.Certification == CertificationCertified {
			return state, apperror.InvalidState("door is already certified")
		}
		state.Inspection = InspectionInProgress
		return state, nil

	case EventCompleteInspection:
		if state.Inspection != InspectionInProgress {
			return state, apperror.InvalidState("no inspection in progress for this door")
		}
		state.Inspection = InspectionCompleted
		// Completing the re-inspection of a rejected door clears the rejection
		// and puts the door back in the normal review queue.
		if state.Certification == CertificationRejected {
			state.Certification = CertificationPending
		}
		return state, nil

	case EventOpenReview:
		if state.Inspection != InspectionCompleted || state.Certification != CertificationPending {
			return state, apperror.InvalidState("door is not awaiting a certification decision")
		}
		state.Certification = CertificationUnderReview
		return state, nil

	case EventCertify:
		if state.Inspection != InspectionCompleted {
			return state, apperror.InvalidState("door has no completed inspection to certify")
		}
		if state.Certification == CertificationCertified {
			return state, apperror.InvalidState("door is already certified")
		}
		if state.Certification == CertificationRejected {
			return state, apperror.InvalidState("rejected door must be re-inspected before certification")
		}
		state.Certification = CertificationCertified
		return state, nil

	case EventReject:
		if state.Inspection != InspectionCompleted {
			return state, apperror.InvalidState("door has no completed inspection to reject")
		}
		if state.Certification == CertificationCertified {
			return state, apperror.InvalidState("door is already certified")
		}
		if state.Certification == CertificationRejected {
			return state, apperror.InvalidState("door is already rejected")
		}
		// Rejection intentionally discards the completed inspection status so
		// the door falls out of the certification queue until re-inspected.
		state.Inspection = InspectionPending
		state.Certification = CertificationRejected
		return state, nil

	case EventDeleteOnlyInspection:
		state.Inspection = InspectionPending
		return state, nil

	case EventDeleteCertification:
		if state.Certification != CertificationCertified {
			return state, apperror.InvalidState("door has no certification to delete")
		}
		state.Certification = CertificationPending
		return state, nil
	}

	return state, apperror.Validation("unknown lifecycle event %d", int(event))
}

// ClearsRejection reports whether applying event to state transitions the door
// out of rejected, in which case the stored rejection reason must be cleared.
func ClearsRejection(state DoorState, event Event) bool {
	if state.Certification != CertificationRejected {
		return false
	}
	next, err := Transition(state, event)
	return err == nil && next.Certification != CertificationRejected
}
