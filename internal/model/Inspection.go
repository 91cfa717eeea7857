package model

import (
	"time"

	"github.com/sealteck/doortrack/pkg/doorflow"
)

// Inspection is one attempt, by one inspector, to walk the checklist against
// a door. Only the most recent non-superseded completed inspection is
// authoritative for certification.
type Inspection struct {
	BaseModel
	InspectionDate time.Time                       `gorm:"type:timestamptz;not null" json:"inspectionDate"`
	CompletedDate  *time.Time                      `gorm:"type:timestamptz" json:"completedDate"`
	Status         doorflow.InspectionRecordStatus `gorm:"type:integer;default:0;not null;index:idx_inspections_door_status" json:"status"`
	Notes          string                          `gorm:"type:text" json:"notes"`

	DoorID string `gorm:"type:text;not null;index:idx_inspections_door_status" json:"doorId"`
	Door   Door   `gorm:"foreignKey:DoorID;constraint:OnDelete:CASCADE" json:"door,omitempty"`

	InspectorID string `gorm:"type:text;not null" json:"inspectorId"`
	Inspector   User   `gorm:"foreignKey:InspectorID" json:"inspector,omitempty"`

	Checks []InspectionCheck `gorm:"foreignKey:InspectionID" json:"checks,omitempty"`
}

func (i Inspection) TableName() string {
	return "inspections"
}
