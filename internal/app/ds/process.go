package ds

// Process тип судебного/внесудебного процесса
type Process struct {
	Model
	CaseType string `gorm:"not null" json:"case_type"`

	Fees []ProcessFee `gorm:"foreignKey:ProcessID" json:"-"`
}

// ProcessFee связь процесс - тариф (М-М)
type ProcessFee struct {
	Model
	ProcessID uint `gorm:"not null;index" json:"process_id"`
	FeeID     uint `gorm:"not null;index" json:"fee_id"`

	Process Process `gorm:"foreignKey:ProcessID" json:"-"`
	Fee     Fee     `gorm:"foreignKey:FeeID" json:"-"`
}
