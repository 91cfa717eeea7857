package model

import "time"

// InspectionCheck is one inspection's answer to one inspection point.
// Created in bulk when the inspection starts; ordering comes from the
// referenced point's order index, never from the check itself.
type InspectionCheck struct {
	BaseModel
	IsChecked bool       `gorm:"type:boolean;default:false;not null" json:"isChecked"`
	Notes     *string    `gorm:"type:text" json:"notes"`
	CheckedAt *time.Time `gorm:"type:timestamptz" json:"checkedAt"`

	InspectionID string     `gorm:"type:text;not null;index" json:"inspectionId"`
	Inspection   Inspection `gorm:"foreignKey:InspectionID;constraint:OnDelete:CASCADE" json:"inspection,omitempty"`

	InspectionPointID string          `gorm:"type:text;not null" json:"inspectionPointId"`
	InspectionPoint   InspectionPoint `gorm:"foreignKey:InspectionPointID" json:"inspectionPoint,omitempty"`

	PhotoFileID *string `gorm:"type:text" json:"photoFileId"`
	PhotoFile   *File   `gorm:"foreignKey:PhotoFileID;constraint:OnDelete:SET NULL" json:"photoFile,omitempty"`
}

func (ic InspectionCheck) TableName() string {
	return "inspection_checks"
}
