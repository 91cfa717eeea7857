package doorflow

import "testing"

func TestParseInspectionStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    InspectionStatus
		wantErr bool
	}{
		{"pending", InspectionPending, false},
		{"in_progress", InspectionInProgress, false},
		{"completed", InspectionCompleted, false},
		{"certified", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseInspectionStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseInspectionStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseInspectionStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseCertificationStatus(t *testing.T) {
	tests := []struct {
		in      string
		want    CertificationStatus
		wantErr bool
	}{
		{"pending", CertificationPending, false},
		{"under_review", CertificationUnderReview, false},
		{"certified", CertificationCertified, false},
		{"rejected", CertificationRejected, false},
		{"in_progress", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseCertificationStatus(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseCertificationStatus(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseCertificationStatus(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestStatusStringRoundTrip(t *testing.T) {
	for _, s := range []InspectionStatus{InspectionPending, InspectionInProgress, InspectionCompleted} {
		got, err := ParseInspectionStatus(s.String())
		if err != nil || got != s {
			t.Errorf("round trip of %v: got %v, err %v", s, got, err)
		}
	}
	for _, s := range []CertificationStatus{CertificationPending, CertificationUnderReview, CertificationCertified, CertificationRejected} {
		got, err := ParseCertificationStatus(s.String())
		if err != nil || got != s {
			t.Errorf("round trip of %v: got %v, err %v", s, got, err)
		}
	}
}
