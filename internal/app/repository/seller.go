package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
)

func (r *Repository) ListSellers(ctx context.Context) ([]ds.Seller, error) {
	return listAll[ds.Seller](r.db.WithContext(ctx))
}

func (r *Repository) GetSeller(ctx context.Context, pid uuid.UUID) (*ds.Seller, error) {
	return firstByPID[ds.Seller](r.db.WithContext(ctx), "seller", pid)
}

func (r *Repository) CreateSeller(ctx context.Context, name string) (*ds.Seller, error) {
	seller := ds.Seller{Name: name}
	if err := r.db.WithContext(ctx).Create(&seller).Error; err != nil {
		return nil, translate(err)
	}
	return &seller, nil
}

func (r *Repository) UpdateSeller(ctx context.Context, pid uuid.UUID, name string) (*ds.Seller, error) {
	return updateByPID[ds.Seller](r.db.WithContext(ctx), "seller", pid, map[string]interface{}{
		"name": name,
	})
}

func (r *Repository) DeleteSeller(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Seller](r.db.WithContext(ctx), "seller", pid)
}
