package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
)

func (r *Repository) ListFees(ctx context.Context) ([]ds.Fee, error) {
	return listAll[ds.Fee](r.db.WithContext(ctx))
}

func (r *Repository) GetFee(ctx context.Context, pid uuid.UUID) (*ds.Fee, error) {
	return firstByPID[ds.Fee](r.db.WithContext(ctx), "fee", pid)
}

func (r *Repository) CreateFee(ctx context.Context, name string, feeType *string) (*ds.Fee, error) {
	fee := ds.Fee{Fee: name, Type: feeType}
	if err := r.db.WithContext(ctx).Create(&fee).Error; err != nil {
		return nil, translate(err)
	}
	return &fee, nil
}

func (r *Repository) UpdateFee(ctx context.Context, pid uuid.UUID, name string, feeType *string) (*ds.Fee, error) {
	return updateByPID[ds.Fee](r.db.WithContext(ctx), "fee", pid, map[string]interface{}{
		"fee":  name,
		"type": feeType,
	})
}

// DeleteFee удаляет тариф и все его привязки к заказам и процессам
func (r *Repository) DeleteFee(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Fee](r.db.WithContext(ctx), "fee", pid)
}
