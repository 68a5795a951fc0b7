package dto

import "github.com/google/uuid"

// ============ Общие структуры ============

type ErrorResponse struct {
	Status      string `json:"status"`
	Description string `json:"description"`
}

type SuccessResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ============ Процессы (Processes) ============

type ProcessRequest struct {
	CaseType string `json:"case_type" binding:"required"`
}

type ProcessFeeView struct {
	ProcessFeePID uuid.UUID `json:"process_fee_pid"`
	FeePID        uuid.UUID `json:"fee_pid"`
	Fee           string    `json:"fee"`
	Type          *string   `json:"type"`
}

type ProcessView struct {
	PID      uuid.UUID        `json:"pid"`
	CaseType string           `json:"case_type"`
	Fees     []ProcessFeeView `json:"fees"`
}

// ProcessBrief процесс внутри заказа
type ProcessBrief struct {
	PID      uuid.UUID `json:"pid"`
	CaseType string    `json:"case_type"`
}

// ============ Тарифы процессов (Process fees) ============

type CreateProcessFeeRequest struct {
	ProcessPID uuid.UUID `json:"process_pid" binding:"required"`
	FeePID     uuid.UUID `json:"fee_pid" binding:"required"`
}

type UpdateProcessFeeRequest struct {
	ProcessFeePID uuid.UUID `json:"process_fee_pid" binding:"required"`
	ProcessPID    uuid.UUID `json:"process_pid" binding:"required"`
	FeePID        uuid.UUID `json:"fee_pid" binding:"required"`
}

type DeleteProcessFeeRequest struct {
	ProcessFeePID uuid.UUID `json:"process_fee_pid" binding:"required"`
}

// ============ Партнёры (Partners) ============

type PartnerRequest struct {
	Name        string  `json:"name" binding:"required"`
	Information *string `json:"information"`
	Phone       *string `json:"phone"`
	Email       *string `json:"email" binding:"omitempty,email"`
}

type PartnerView struct {
	PID         uuid.UUID `json:"pid"`
	Name        string    `json:"name"`
	Information *string   `json:"information"`
	Phone       *string   `json:"phone"`
	Email       *string   `json:"email"`
}

// ============ Продавцы (Sellers) ============

type SellerRequest struct {
	Name string `json:"name" binding:"required"`
}

type SellerView struct {
	PID  uuid.UUID `json:"pid"`
	Name string    `json:"name"`
}

// ============ Тарифы (Fees) ============

type FeeRequest struct {
	Fee  string  `json:"fee" binding:"required"`
	Type *string `json:"type"`
}

type FeeView struct {
	PID  uuid.UUID `json:"pid"`
	Fee  string    `json:"fee"`
	Type *string   `json:"type"`
}

// ============ Клиенты (Clients) ============

type ClientRequest struct {
	Name       string     `json:"name" binding:"required"`
	Contact    string     `json:"contact" binding:"required"`
	Phone      string     `json:"phone" binding:"required"`
	Phone2     *string    `json:"phone2"`
	Email      string     `json:"email" binding:"required,email"`
	PartnerPID *uuid.UUID `json:"partner_pid"`
}

// ClientOrderView краткий заказ в карточке клиента
type ClientOrderView struct {
	PID        uuid.UUID    `json:"pid"`
	Process    ProcessBrief `json:"process"`
	Open       bool         `json:"open"`
	Fee        float64      `json:"fee"`
	Seller     SellerView   `json:"seller"`
	PartnerFee *float64     `json:"partner_fee"`
}

type ClientView struct {
	PID     uuid.UUID         `json:"pid"`
	Name    string            `json:"name"`
	Contact string            `json:"contact"`
	Phone   string            `json:"phone"`
	Phone2  *string           `json:"phone2"`
	Email   string            `json:"email"`
	Partner *PartnerView      `json:"partner"`
	Orders  []ClientOrderView `json:"orders"`
}

// ClientBrief клиент внутри заказа
type ClientBrief struct {
	PID     uuid.UUID    `json:"pid"`
	Name    string       `json:"name"`
	Contact string       `json:"contact"`
	Phone   string       `json:"phone"`
	Phone2  *string      `json:"phone2"`
	Email   string       `json:"email"`
	Partner *PartnerView `json:"partner"`
}

// ============ Заказы (Orders) ============

type OrderFeeRequest struct {
	FeePID      uuid.UUID  `json:"fee_pid" binding:"required"`
	OrderFeePID *uuid.UUID `json:"order_fee_pid"`
	Open        bool       `json:"open"`
	Value       float64    `json:"value"`
	Info        *string    `json:"info"`
}

type PaymentRequest struct {
	PID              *uuid.UUID `json:"pid"`
	Value            float64    `json:"value"`
	PaymentDate      *Date      `json:"payment_date" swaggertype:"string" example:"2025-01-31"`
	DueDate          Date       `json:"due_date" swaggertype:"string" example:"2025-01-31"`
	PaymentMethod    *string    `json:"payment_method"`
	Currency         *string    `json:"currency"`
	PostponedPayment *bool      `json:"postponed_payment"`
	Open             bool       `json:"open"`
	PostponedDates   []Date     `json:"postponed_dates" swaggertype:"array,string"`
}

type OrderRequest struct {
	ProcessPID uuid.UUID         `json:"process_pid" binding:"required"`
	ClientPID  uuid.UUID         `json:"client_pid" binding:"required"`
	SellerPID  uuid.UUID         `json:"seller_pid" binding:"required"`
	Open       bool              `json:"open"`
	Fee        float64           `json:"fee"`
	Payout     *float64          `json:"payout"`
	PartnerFee *float64          `json:"partner_fee"`
	Fees       []OrderFeeRequest `json:"fees" binding:"dive"`
	Payments   []PaymentRequest  `json:"payments" binding:"required,min=1,dive"`
}

type OrderFeeView struct {
	FeePID      uuid.UUID `json:"fee_pid"`
	OrderFeePID uuid.UUID `json:"order_fee_pid"`
	Fee         string    `json:"fee"`
	Type        *string   `json:"type"`
	Value       float64   `json:"value"`
	Open        bool      `json:"open"`
	Info        *string   `json:"info"`
}

type PaymentView struct {
	PID              uuid.UUID `json:"pid"`
	Value            float64   `json:"value"`
	PaymentDate      *Date     `json:"payment_date" swaggertype:"string"`
	DueDate          Date      `json:"due_date" swaggertype:"string"`
	PaymentMethod    *string   `json:"payment_method"`
	Currency         *string   `json:"currency"`
	PostponedPayment *bool     `json:"postponed_payment"`
	Open             bool      `json:"open"`
	PostponedDates   []Date    `json:"postponed_dates" swaggertype:"array,string"`
}

type OrderView struct {
	PID        uuid.UUID      `json:"pid"`
	Client     ClientBrief    `json:"client"`
	Process    ProcessBrief   `json:"process"`
	Seller     SellerView     `json:"seller"`
	Open       bool           `json:"open"`
	Fee        float64        `json:"fee"`
	Payout     float64        `json:"payout"`
	PartnerFee *float64       `json:"partner_fee"`
	Fees       []OrderFeeView `json:"fees"`
	Payments   []PaymentView  `json:"payments"`
}

// ============ Пользователи (Users) ============

type RegisterRequest struct {
	Login    string `json:"login" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6"`
	Name     string `json:"name" binding:"required"`
}

type LoginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
	ExpiresIn int    `json:"expires_in"`
}

type UserView struct {
	PID   uuid.UUID `json:"pid"`
	Login string    `json:"login"`
	Name  string    `json:"name"`
	Role  string    `json:"role"`
}

// ============ Резервные копии (Backups) ============

type BackupResponse struct {
	Prefix string         `json:"prefix"`
	Tables map[string]int `json:"tables"`
}
