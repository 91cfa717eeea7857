package doorflow

import (
	"testing"

	"github.com/sealteck/doortrack/internal/apperror"
)

func TestDoorTypeForPressure(t *testing.T) {
	tests := []struct {
		name     string
		pressure int
		want     DoorType
		wantErr  bool
	}{
		{"400 kPa is V1", 400, DoorTypeV1, false},
		{"140 kPa is V2", 140, DoorTypeV2, false},
		{"other pressure rejected", 250, "", true},
		{"zero rejected", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DoorTypeForPressure(tt.pressure)
			if (err != nil) != tt.wantErr {
				t.Fatalf("DoorTypeForPressure() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && !apperror.IsKind(err, apperror.KindValidation) {
				t.Errorf("DoorTypeForPressure() error kind = %v, want validation", err)
			}
			if got != tt.want {
				t.Errorf("DoorTypeForPressure() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSizeCode(t *testing.T) {
	tests := []struct {
		size    string
		want    string
		wantErr bool
	}{
		{"1.5", "15", false},
		{"1.8", "18", false},
		{"2.0", "20", false},
		// No silent fallback to "15" for bad input.
		{"2.5", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run("size "+tt.size, func(t *testing.T) {
			got, err := SizeCode(tt.size)
			if (err != nil) != tt.wantErr {
				t.Fatalf("SizeCode(%q) error = %v, wantErr %v", tt.size, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("SizeCode(%q) = %q, want %q", tt.size, got, tt.want)
			}
		})
	}
}

// Base 200 with five existing doors: the sixth door takes sequence 6,
// numeric serial 206 and drawing number S206.
func TestSixthDoorNumbering(t *testing.T) {
	n := NextSerial(200, 6)
	if n != 206 {
		t.Fatalf("NextSerial(200, 6) = %d, want 206", n)
	}

	if got := DrawingNumber(n); got != "S206" {
		t.Errorf("DrawingNumber(%d) = %q, want %q", n, got, "S206")
	}

	code, err := SizeCode("1.8")
	if err != nil {
		t.Fatalf("SizeCode(1.8) error = %v", err)
	}
	if got := SerialNumber(n, DoorTypeV1, code); got != "V1-18-0206" {
		t.Errorf("SerialNumber() = %q, want %q", got, "V1-18-0206")
	}
}

func TestDrawingNumberPadding(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{7, "S007"},
		{42, "S042"},
		{206, "S206"},
		{1042, "S1042"},
	}

	for _, tt := range tests {
		if got := DrawingNumber(tt.n); got != tt.want {
			t.Errorf("DrawingNumber(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

// Sequences are monotonic and never reused: a later sequence always yields a
// larger serial regardless of deletions in between.
func TestNextSerialMonotonic(t *testing.T) {
	prev := NextSerial(200, 1)
	for seq := 2; seq <= 10; seq++ {
		n := NextSerial(200, seq)
		if n <= prev {
			t.Fatalf("NextSerial(200, %d) = %d, not greater than %d", seq, n, prev)
		}
		prev = n
	}
}
