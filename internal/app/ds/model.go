package ds

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Model общие колонки всех таблиц.
// ID - внутренний ключ, наружу отдаётся только PID.
type Model struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	PID       uuid.UUID `gorm:"column:pid;type:uuid;uniqueIndex;not null" json:"pid"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate генерирует pid при вставке (если он не задан явно, например при восстановлении из бэкапа)
func (m *Model) BeforeCreate(tx *gorm.DB) error {
	if m.PID == uuid.Nil {
		m.PID = uuid.New()
	}
	return nil
}
