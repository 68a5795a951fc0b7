package ds

// Fee справочник тарифов
type Fee struct {
	Model
	Fee  string  `gorm:"not null" json:"fee"`
	Type *string `gorm:"column:type" json:"type"`
}
