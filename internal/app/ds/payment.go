package ds

import "gorm.io/datatypes"

// Payment платёж по заказу
type Payment struct {
	Model
	OrderID          uint            `gorm:"not null;index" json:"order_id"`
	Value            float64         `gorm:"not null" json:"value"`
	PaymentDate      *datatypes.Date `json:"payment_date"`
	DueDate          datatypes.Date  `gorm:"not null" json:"due_date"`
	PaymentMethod    *string         `json:"payment_method"`
	Currency         *string         `json:"currency"`
	PostponedPayment *bool           `json:"postponed_payment"`
	Open             bool            `gorm:"not null" json:"open"`

	PostponedDates []PostponedPayment `gorm:"foreignKey:PaymentID" json:"-"`
}

// PostponedPayment перенесённая дата платежа
type PostponedPayment struct {
	Model
	PaymentID     uint           `gorm:"not null;index" json:"payment_id"`
	PostponedDate datatypes.Date `gorm:"not null" json:"postponed_date"`
}
