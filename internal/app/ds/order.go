package ds

// Order заказ клиента: тарифы + график платежей
type Order struct {
	Model
	ClientID   uint     `gorm:"not null;index" json:"client_id"`
	ProcessID  uint     `gorm:"not null;index" json:"process_id"`
	SellerID   uint     `gorm:"not null;index" json:"seller_id"`
	Open       bool     `gorm:"not null" json:"open"`
	Fee        float64  `gorm:"not null" json:"fee"`
	Payout     float64  `gorm:"not null;default:0" json:"payout"`
	PartnerFee *float64 `json:"partner_fee"`

	Client   Client     `gorm:"foreignKey:ClientID" json:"-"`
	Process  Process    `gorm:"foreignKey:ProcessID" json:"-"`
	Seller   Seller     `gorm:"foreignKey:SellerID" json:"-"`
	Fees     []OrderFee `gorm:"foreignKey:OrderID" json:"-"`
	Payments []Payment  `gorm:"foreignKey:OrderID" json:"-"`
}

// OrderFee связь заказ - тариф с атрибутами (М-М)
type OrderFee struct {
	Model
	OrderID uint    `gorm:"not null;index" json:"order_id"`
	FeeID   uint    `gorm:"not null;index" json:"fee_id"`
	Open    bool    `gorm:"not null" json:"open"`
	Value   float64 `gorm:"not null" json:"value"`
	Info    *string `json:"info"`

	Fee Fee `gorm:"foreignKey:FeeID" json:"-"`
}
