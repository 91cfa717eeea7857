package model

import "time"

// Certification is the immutable record of one successful certification
// event. Exactly one row is created per certify action; removing the row
// (admin-only) rolls the owning door's certification status back to pending.
type Certification struct {
	BaseModel
	CertifiedAt time.Time `gorm:"type:timestamptz;not null" json:"certifiedAt"`

	DoorID string `gorm:"type:text;not null;index" json:"doorId"`
	Door   Door   `gorm:"foreignKey:DoorID;constraint:OnDelete:CASCADE" json:"door,omitempty"`

	EngineerID string `gorm:"type:text;not null" json:"engineerId"`
	Engineer   User   `gorm:"foreignKey:EngineerID" json:"engineer,omitempty"`

	// The inspection this decision was based on.
	InspectionID string     `gorm:"type:text;not null" json:"inspectionId"`
	Inspection   Inspection `gorm:"foreignKey:InspectionID" json:"inspection,omitempty"`

	CertificatePdfID string `gorm:"type:text;not null" json:"certificatePdfId"`
	CertificatePdf   File   `gorm:"foreignKey:CertificatePdfID;constraint:OnDelete:SET NULL" json:"certificatePdf,omitempty"`

	SignatureFileID *string `gorm:"type:text" json:"signatureFileId"`
	SignatureFile   *File   `gorm:"foreignKey:SignatureFileID;constraint:OnDelete:SET NULL" json:"signatureFile,omitempty"`
}

func (c Certification) TableName() string {
	return "certifications"
}
