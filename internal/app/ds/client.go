package ds

// Client клиент (может быть приведён партнёром)
type Client struct {
	Model
	Name      string  `gorm:"not null" json:"name"`
	Contact   string  `gorm:"not null" json:"contact"`
	Phone     string  `gorm:"not null" json:"phone"`
	Phone2    *string `json:"phone2"`
	Email     string  `gorm:"not null" json:"email"`
	PartnerID *uint   `gorm:"index" json:"partner_id"`

	Partner *Partner `gorm:"foreignKey:PartnerID" json:"-"`
	Orders  []Order  `gorm:"foreignKey:ClientID" json:"-"`
}
