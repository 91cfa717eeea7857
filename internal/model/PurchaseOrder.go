package model

type PurchaseOrder struct {
	BaseModel
	PoNumber    string `gorm:"type:varchar(50);not null;uniqueIndex" json:"poNumber" form:"poNumber" binding:"required,strNotEmpty"`
	ClientName  string `gorm:"type:varchar(100);not null" json:"clientName" form:"clientName" binding:"required,strNotEmpty"`
	ClientEmail string `gorm:"type:text;not null" json:"clientEmail" form:"clientEmail" binding:"required,email"`
	Description string `gorm:"type:text" json:"description" form:"description"`

	Doors []Door `gorm:"foreignKey:PoID" json:"doors,omitempty"`
}

func (po PurchaseOrder) TableName() string {
	return "purchase_orders"
}
