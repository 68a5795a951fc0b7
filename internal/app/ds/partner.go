package ds

// Partner партнёр, приводящий клиентов
type Partner struct {
	Model
	Name        string  `gorm:"not null" json:"name"`
	Information *string `json:"information"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email"`
}
