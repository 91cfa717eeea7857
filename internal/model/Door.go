package model

import "github.com/sealteck/doortrack/pkg/doorflow"

// Door is one physical pressure door. Identity fields (po, door number,
// serial, drawing) are immutable after creation; the status pair is mutated
// only by the lifecycle operations in the repository layer.
type Door struct {
	BaseModel
	DoorNumber    int    `gorm:"type:int;not null" json:"doorNumber"`
	SerialNumber  string `gorm:"type:varchar(30);not null;uniqueIndex" json:"serialNumber"`
	DrawingNumber string `gorm:"type:varchar(30);not null" json:"drawingNumber"`
	JobNumber     string `gorm:"type:varchar(50);not null" json:"jobNumber"`
	Description   string `gorm:"type:text" json:"description"`
	// Rated pressure in kPa, 140 or 400.
	Pressure int `gorm:"type:int;not null" json:"pressure"`
	// V1 for 400 kPa doors, V2 for 140 kPa doors.
	DoorType doorflow.DoorType `gorm:"type:varchar(5);not null" json:"doorType"`
	Size     string            `gorm:"type:varchar(5);not null" json:"size"`

	InspectionStatus    doorflow.InspectionStatus    `gorm:"type:integer;default:0;not null" json:"inspectionStatus"`
	CertificationStatus doorflow.CertificationStatus `gorm:"type:integer;default:0;not null" json:"certificationStatus"`
	RejectionReason     *string                      `gorm:"type:text" json:"rejectionReason"`

	PoID          string        `gorm:"type:text;not null;index" json:"poId"`
	PurchaseOrder PurchaseOrder `gorm:"foreignKey:PoID;constraint:OnDelete:RESTRICT" json:"purchaseOrder,omitempty"`

	Inspections    []Inspection    `gorm:"foreignKey:DoorID" json:"inspections,omitempty"`
	Certifications []Certification `gorm:"foreignKey:DoorID" json:"certifications,omitempty"`
}

func (d Door) TableName() string {
	return "doors"
}

func (d Door) State() doorflow.DoorState {
	return doorflow.DoorState{
		Inspection:    d.InspectionStatus,
		Certification: d.CertificationStatus,
	}
}
