package ds

import "backoffice/internal/app/role"

// User пользователь бэк-офиса
type User struct {
	Model
	Login    string    `gorm:"type:varchar(50);uniqueIndex;not null" json:"login"`
	Password string    `gorm:"type:varchar(255);not null" json:"-"`
	Name     string    `gorm:"type:varchar(100)" json:"name"`
	Role     role.Role `gorm:"not null;default:0" json:"role"`
}
