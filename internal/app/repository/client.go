package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClientInput изменяемые поля клиента, партнёр указывается по pid
type ClientInput struct {
	Name       string
	Contact    string
	Phone      string
	Phone2     *string
	Email      string
	PartnerPID *uuid.UUID
}

// Клиент отдаётся с партнёром и кратким списком заказов
func preloadClient(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Partner").
		Preload("Orders", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Orders.Process").
		Preload("Orders.Seller")
}

func (r *Repository) ListClients(ctx context.Context) ([]ds.Client, error) {
	return listAll[ds.Client](preloadClient(r.db.WithContext(ctx)))
}

func (r *Repository) GetClient(ctx context.Context, pid uuid.UUID) (*ds.Client, error) {
	return firstByPID[ds.Client](preloadClient(r.db.WithContext(ctx)), "client", pid)
}

// resolvePartner возвращает внутренний id партнёра или nil, если партнёр не указан
func resolvePartner(db *gorm.DB, pid *uuid.UUID) (*uint, error) {
	if pid == nil {
		return nil, nil
	}
	partner, err := firstByPID[ds.Partner](db, "partner", *pid)
	if err != nil {
		return nil, err
	}
	return &partner.ID, nil
}

func (r *Repository) CreateClient(ctx context.Context, in ClientInput) (*ds.Client, error) {
	db := r.db.WithContext(ctx)

	partnerID, err := resolvePartner(db, in.PartnerPID)
	if err != nil {
		return nil, err
	}

	client := ds.Client{
		Name:      in.Name,
		Contact:   in.Contact,
		Phone:     in.Phone,
		Phone2:    in.Phone2,
		Email:     in.Email,
		PartnerID: partnerID,
	}
	if err := db.Omit("Partner", "Orders").Create(&client).Error; err != nil {
		return nil, translate(err)
	}

	return r.GetClient(ctx, client.PID)
}

func (r *Repository) UpdateClient(ctx context.Context, pid uuid.UUID, in ClientInput) (*ds.Client, error) {
	db := r.db.WithContext(ctx)

	partnerID, err := resolvePartner(db, in.PartnerPID)
	if err != nil {
		return nil, err
	}

	_, err = updateByPID[ds.Client](db, "client", pid, map[string]interface{}{
		"name":       in.Name,
		"contact":    in.Contact,
		"phone":      in.Phone,
		"phone2":     in.Phone2,
		"email":      in.Email,
		"partner_id": partnerID,
	})
	if err != nil {
		return nil, err
	}

	return r.GetClient(ctx, pid)
}

// DeleteClient удаляет клиента вместе с заказами и платежами (каскад)
func (r *Repository) DeleteClient(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Client](r.db.WithContext(ctx), "client", pid)
}
