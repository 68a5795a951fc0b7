package ds

type Seller struct {
	Model
	Name string `gorm:"not null" json:"name"`
}
