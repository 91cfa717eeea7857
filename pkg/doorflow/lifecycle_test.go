package doorflow

import (
	"testing"

	"github.com/sealteck/doortrack/internal/apperror"
)

func TestTransition(t *testing.T) {
	tests := []struct {
		name    string
		state   DoorState
		event   Event
		want    DoorState
		wantErr bool
	}{
		{
			"start on new door",
			DoorState{InspectionPending, CertificationPending},
			EventStartInspection,
			DoorState{InspectionInProgress, CertificationPending},
			false,
		},
		{
			"double start fails",
			DoorState{InspectionInProgress, CertificationPending},
			EventStartInspection,
			DoorState{},
			true,
		},
		{
			"start on rejected door despite no open work",
			DoorState{InspectionPending, CertificationRejected},
			EventStartInspection,
			DoorState{InspectionInProgress, CertificationRejected},
			false,
		},
		{
			"start on rejected door overrides open re-inspection",
			DoorState{InspectionInProgress, CertificationRejected},
			EventStartInspection,
			DoorState{InspectionInProgress, CertificationRejected},
			false,
		},
		{
			"start on certified door fails",
			DoorState{InspectionCompleted, CertificationCertified},
			EventStartInspection,
			DoorState{},
			true,
		},
		{
			"complete inspection",
			DoorState{InspectionInProgress, CertificationPending},
			EventCompleteInspection,
			DoorState{InspectionCompleted, CertificationPending},
			false,
		},
		{
			"complete without in-progress fails",
			DoorState{InspectionPending, CertificationPending},
			EventCompleteInspection,
			DoorState{},
			true,
		},
		{
			"complete re-inspection clears rejection",
			DoorState{InspectionInProgress, CertificationRejected},
			EventCompleteInspection,
			DoorState{InspectionCompleted, CertificationPending},
			false,
		},
		{
			"open review",
			DoorState{InspectionCompleted, CertificationPending},
			EventOpenReview,
			DoorState{InspectionCompleted, CertificationUnderReview},
			false,
		},
		{
			"open review before completion fails",
			DoorState{InspectionInProgress, CertificationPending},
			EventOpenReview,
			DoorState{},
			true,
		},
		{
			"certify from pending",
			DoorState{InspectionCompleted, CertificationPending},
			EventCertify,
			DoorState{InspectionCompleted, CertificationCertified},
			false,
		},
		{
			"certify from under review",
			DoorState{InspectionCompleted, CertificationUnderReview},
			EventCertify,
			DoorState{InspectionCompleted, CertificationCertified},
			false,
		},
		{
			"certify with no completed inspection fails",
			DoorState{InspectionInProgress, CertificationPending},
			EventCertify,
			DoorState{},
			true,
		},
		{
			"certify twice fails",
			DoorState{InspectionCompleted, CertificationCertified},
			EventCertify,
			DoorState{},
			true,
		},
		{
			"reject resets inspection to pending",
			DoorState{InspectionCompleted, CertificationPending},
			EventReject,
			DoorState{InspectionPending, CertificationRejected},
			false,
		},
		{
			"reject from under review",
			DoorState{InspectionCompleted, CertificationUnderReview},
			EventReject,
			DoorState{InspectionPending, CertificationRejected},
			false,
		},
		{
			"reject certified door fails",
			DoorState{InspectionCompleted, CertificationCertified},
			EventReject,
			DoorState{},
			true,
		},
		{
			"reject twice fails",
			DoorState{InspectionPending, CertificationRejected},
			EventReject,
			DoorState{},
			true,
		},
		{
			"delete only inspection resets to pending",
			DoorState{InspectionCompleted, CertificationPending},
			EventDeleteOnlyInspection,
			DoorState{InspectionPending, CertificationPending},
			false,
		},
		{
			"delete certification rolls back to pending",
			DoorState{InspectionCompleted, CertificationCertified},
			EventDeleteCertification,
			DoorState{InspectionCompleted, CertificationPending},
			false,
		},
		{
			"delete certification without one fails",
			DoorState{InspectionCompleted, CertificationPending},
			EventDeleteCertification,
			DoorState{},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Transition(tt.state, tt.event)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Transition() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				if !apperror.IsKind(err, apperror.KindInvalidState) && !apperror.IsKind(err, apperror.KindValidation) {
					t.Errorf("Transition() error kind = %v, want invalid state or validation", err)
				}
				// No partial state change on failure.
				if got != tt.state {
					t.Errorf("Transition() mutated state on error: %v -> %v", tt.state, got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Transition() = %v, want %v", got, tt.want)
			}
		})
	}
}

// Full happy path followed by the rejection loop, mirroring how a door moves
// through the workshop.
func TestLifecycleScenario(t *testing.T) {
	state := DoorState{InspectionPending, CertificationPending}

	step := func(event Event, want DoorState) {
		t.Helper()
		next, err := Transition(state, event)
		if err != nil {
			t.Fatalf("%s from %v: unexpected error %v", event, state, err)
		}
		if next != want {
			t.Fatalf("%s from %v = %v, want %v", event, state, next, want)
		}
		state = next
	}

	step(EventStartInspection, DoorState{InspectionInProgress, CertificationPending})
	step(EventCompleteInspection, DoorState{InspectionCompleted, CertificationPending})
	step(EventCertify, DoorState{InspectionCompleted, CertificationCertified})

	// Roll the certification back administratively, then reject and re-inspect.
	step(EventDeleteCertification, DoorState{InspectionCompleted, CertificationPending})
	step(EventReject, DoorState{InspectionPending, CertificationRejected})
	step(EventStartInspection, DoorState{InspectionInProgress, CertificationRejected})
	step(EventCompleteInspection, DoorState{InspectionCompleted, CertificationPending})
	step(EventCertify, DoorState{InspectionCompleted, CertificationCertified})
}

func TestClearsRejection(t *testing.T) {
	rejectedInProgress := DoorState{InspectionInProgress, CertificationRejected}
	if !ClearsRejection(rejectedInProgress, EventCompleteInspection) {
		t.Errorf("completing a re-inspection should clear the rejection")
	}
	if ClearsRejection(rejectedInProgress, EventStartInspection) {
		t.Errorf("starting a re-inspection must keep the rejection until completion")
	}
	if ClearsRejection(DoorState{InspectionInProgress, CertificationPending}, EventCompleteInspection) {
		t.Errorf("non-rejected doors have no rejection to clear")
	}
}
