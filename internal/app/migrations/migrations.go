package migrations

import (
	"time"

	"github.com/go-gormigrate/gormigrate/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Base колонки, общие для всех таблиц на момент создания.
// Структуры миграций не ссылаются на ds.
type Base struct {
	ID        uint      `gorm:"primaryKey"`
	PID       uuid.UUID `gorm:"column:pid;type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

type ref struct {
	ID uint `gorm:"primaryKey"`
}

// List все миграции в порядке применения
func List() []*gormigrate.Migration {
	return []*gormigrate.Migration{
		{
			ID: "20220101000001_users",
			Migrate: func(tx *gorm.DB) error {
				type user struct {
					Base
					Login    string `gorm:"type:varchar(50);uniqueIndex;not null"`
					Password string `gorm:"type:varchar(255);not null"`
					Name     string `gorm:"type:varchar(100)"`
					Role     int    `gorm:"not null;default:0"`
				}
				return tx.Migrator().CreateTable(&user{})
			},
			Rollback: dropTable("users"),
		},
		{
			ID: "20241216021800_processes",
			Migrate: func(tx *gorm.DB) error {
				type process struct {
					Base
					CaseType string `gorm:"not null"`
				}
				return tx.Migrator().CreateTable(&process{})
			},
			Rollback: dropTable("processes"),
		},
		{
			ID: "20241216022307_partners",
			Migrate: func(tx *gorm.DB) error {
				type partner struct {
					Base
					Name        string `gorm:"not null"`
					Information *string
					Phone       *string
					Email       *string
				}
				return tx.Migrator().CreateTable(&partner{})
			},
			Rollback: dropTable("partners"),
		},
		{
			ID: "20241216022614_sellers",
			Migrate: func(tx *gorm.DB) error {
				type seller struct {
					Base
					Name string `gorm:"not null"`
				}
				return tx.Migrator().CreateTable(&seller{})
			},
			Rollback: dropTable("sellers"),
		},
		{
			ID: "20241216022844_clients",
			Migrate: func(tx *gorm.DB) error {
				type partner ref
				type client struct {
					Base
					Name      string   `gorm:"not null"`
					Contact   string   `gorm:"not null"`
					Phone     string   `gorm:"not null"`
					Phone2    *string
					Email     string   `gorm:"not null"`
					PartnerID *uint    `gorm:"index"`
					Partner   *partner `gorm:"foreignKey:PartnerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&client{})
			},
			Rollback: dropTable("clients"),
		},
		{
			ID: "20241216025420_orders",
			Migrate: func(tx *gorm.DB) error {
				type client ref
				type process ref
				type seller ref
				type order struct {
					Base
					ClientID   uint    `gorm:"not null;index"`
					ProcessID  uint    `gorm:"not null;index"`
					SellerID   uint    `gorm:"not null;index"`
					Open       bool    `gorm:"not null"`
					Fee        float64 `gorm:"not null"`
					Payout     float64 `gorm:"not null;default:0"`
					PartnerFee *float64
					Client     client  `gorm:"foreignKey:ClientID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
					Process    process `gorm:"foreignKey:ProcessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
					Seller     seller  `gorm:"foreignKey:SellerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&order{})
			},
			Rollback: dropTable("orders"),
		},
		{
			ID: "20241216030042_payments",
			Migrate: func(tx *gorm.DB) error {
				type order ref
				type payment struct {
					Base
					OrderID          uint    `gorm:"not null;index"`
					Value            float64 `gorm:"not null"`
					PaymentDate      *datatypes.Date
					DueDate          datatypes.Date `gorm:"not null"`
					PaymentMethod    *string
					Currency         *string
					PostponedPayment *bool
					Open             bool  `gorm:"not null"`
					Order            order `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&payment{})
			},
			Rollback: dropTable("payments"),
		},
		{
			ID: "20241216030204_postponed_payments",
			Migrate: func(tx *gorm.DB) error {
				type payment ref
				type postponedPayment struct {
					Base
					PaymentID     uint           `gorm:"not null;index"`
					PostponedDate datatypes.Date `gorm:"not null"`
					Payment       payment        `gorm:"foreignKey:PaymentID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&postponedPayment{})
			},
			Rollback: dropTable("postponed_payments"),
		},
		{
			ID: "20241220012355_fees",
			Migrate: func(tx *gorm.DB) error {
				type fee struct {
					Base
					Fee  string  `gorm:"not null"`
					Type *string `gorm:"column:type"`
				}
				return tx.Migrator().CreateTable(&fee{})
			},
			Rollback: dropTable("fees"),
		},
		{
			ID: "20241220012613_order_fees",
			Migrate: func(tx *gorm.DB) error {
				type order ref
				type fee ref
				type orderFee struct {
					Base
					OrderID uint    `gorm:"not null;index"`
					FeeID   uint    `gorm:"not null;index"`
					Open    bool    `gorm:"not null"`
					Value   float64 `gorm:"not null"`
					Info    *string
					Order   order `gorm:"foreignKey:OrderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
					Fee     fee   `gorm:"foreignKey:FeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&orderFee{})
			},
			Rollback: dropTable("order_fees"),
		},
		{
			ID: "20250103173848_process_fees",
			Migrate: func(tx *gorm.DB) error {
				type process ref
				type fee ref
				type processFee struct {
					Base
					ProcessID uint    `gorm:"not null;index"`
					FeeID     uint    `gorm:"not null;index"`
					Process   process `gorm:"foreignKey:ProcessID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
					Fee       fee     `gorm:"foreignKey:FeeID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
				}
				return tx.Migrator().CreateTable(&processFee{})
			},
			Rollback: dropTable("process_fees"),
		},
	}
}

func dropTable(name string) gormigrate.RollbackFunc {
	return func(tx *gorm.DB) error {
		return tx.Migrator().DropTable(name)
	}
}

// Migrate применяет все ещё не применённые миграции
func Migrate(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, List())
	if err := m.Migrate(); err != nil {
		return err
	}
	logrus.Info("database migrated")
	return nil
}

// RollbackLast откатывает последнюю применённую миграцию
func RollbackLast(db *gorm.DB) error {
	m := gormigrate.New(db, gormigrate.DefaultOptions, List())
	return m.RollbackLast()
}
