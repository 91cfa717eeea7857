package doorflow

import (
	"fmt"

	"github.com/sealteck/doortrack/internal/apperror"
)

// DoorType is derived from the rated pressure of the door.
type DoorType string

const (
	DoorTypeV1 DoorType = "V1"
	DoorTypeV2 DoorType = "V2"
)

// Rated pressures in kPa.
const (
	Pressure140 = 140
	Pressure400 = 400
)

// sizeCodes maps a door size token to the two-digit code used in serial
// numbers. Unknown sizes are rejected outright rather than defaulted.
var sizeCodes = map[string]string{
	"1.5": "15",
	"1.8": "18",
	"2.0": "20",
}

// DoorTypeForPressure derives the door type: 400 kPa doors are V1, 140 kPa
// doors are V2. Any other pressure is invalid.
func DoorTypeForPressure(pressure int) (DoorType, error) {
	switch pressure {
	case Pressure400:
		return DoorTypeV1, nil
	case Pressure140:
		return DoorTypeV2, nil
	}
	return "", apperror.Validation("unsupported pressure %d kPa, expected %d or %d", pressure, Pressure140, Pressure400)
}

// SizeCode resolves the serial-number code for a size token.
func SizeCode(size string) (string, error) {
	code, ok := sizeCodes[size]
	if !ok {
		return "", apperror.Validation("unknown door size %q", size)
	}
	return code, nil
}

// NextSerial computes the numeric serial value for the door with the given
// 1-based sequence number. The sequence is allocated from an atomic counter
// and never reused, so deleting doors cannot cause a collision with numbers
// already issued.
func NextSerial(counterBase, sequence int) int {
	return counterBase + sequence
}

// SerialNumber formats the globally unique serial for a door from its
// numeric serial value, e.g. 206, V1, code 18 -> "V1-18-0206".
func SerialNumber(serial int, doorType DoorType, sizeCode string) string {
	return fmt.Sprintf("%s-%s-%04d", doorType, sizeCode, serial)
}

// DrawingNumber formats the drawing reference for a numeric serial value,
// e.g. 206 -> "S206".
func DrawingNumber(n int) string {
	return fmt.Sprintf("S%03d", n)
}
