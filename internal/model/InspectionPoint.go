package model

// InspectionPoint is a template checklist line item, shared process-wide.
// Admin-managed and rarely changed; inactive points are kept for history but
// excluded from new inspections.
type InspectionPoint struct {
	BaseModel
	Name        string `gorm:"type:varchar(200);not null" json:"name" form:"name" binding:"required,strNotEmpty"`
	Description string `gorm:"type:text" json:"description" form:"description"`
	OrderIndex  int    `gorm:"type:int;not null" json:"orderIndex" form:"orderIndex"`
	Active      bool   `gorm:"type:boolean;default:true;not null" json:"active" form:"active"`
}

func (ip InspectionPoint) TableName() string {
	return "inspection_points"
}
