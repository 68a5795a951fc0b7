package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
)

// PartnerInput изменяемые поля партнёра
type PartnerInput struct {
	Name        string
	Information *string
	Phone       *string
	Email       *string
}

func (r *Repository) ListPartners(ctx context.Context) ([]ds.Partner, error) {
	return listAll[ds.Partner](r.db.WithContext(ctx))
}

func (r *Repository) GetPartner(ctx context.Context, pid uuid.UUID) (*ds.Partner, error) {
	return firstByPID[ds.Partner](r.db.WithContext(ctx), "partner", pid)
}

func (r *Repository) CreatePartner(ctx context.Context, in PartnerInput) (*ds.Partner, error) {
	partner := ds.Partner{
		Name:        in.Name,
		Information: in.Information,
		Phone:       in.Phone,
		Email:       in.Email,
	}
	if err := r.db.WithContext(ctx).Create(&partner).Error; err != nil {
		return nil, translate(err)
	}
	return &partner, nil
}

func (r *Repository) UpdatePartner(ctx context.Context, pid uuid.UUID, in PartnerInput) (*ds.Partner, error) {
	return updateByPID[ds.Partner](r.db.WithContext(ctx), "partner", pid, map[string]interface{}{
		"name":        in.Name,
		"information": in.Information,
		"phone":       in.Phone,
		"email":       in.Email,
	})
}

// DeletePartner удаляет партнёра вместе с его клиентами (каскад)
func (r *Repository) DeletePartner(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Partner](r.db.WithContext(ctx), "partner", pid)
}
