package role

// Role роль пользователя бэк-офиса
type Role int

const (
	Operator Role = iota // Operator оператор: работа с клиентами и заказами
	Admin                // Admin администратор: плюс резервные копии
)

func (r Role) String() string {
	switch r {
	case Operator:
		return "operator"
	case Admin:
		return "admin"
	default:
		return "unknown"
	}
}

// Valid проверяет, что значение роли известно
func (r Role) Valid() bool {
	return r == Operator || r == Admin
}
