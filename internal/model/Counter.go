package model

// Counter is a named monotonic sequence. Serial numbering increments it with
// a single UPDATE ... RETURNING so concurrent door creations can never be
// issued the same value.
type Counter struct {
	BaseModel
	Name  string `gorm:"type:varchar(50);not null;uniqueIndex" json:"name"`
	Value int    `gorm:"type:int;not null;default:0" json:"value"`
}

func (c Counter) TableName() string {
	return "counters"
}
