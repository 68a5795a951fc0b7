package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для М-М связи процесс - тариф

func (r *Repository) CreateProcessFee(ctx context.Context, processPID, feePID uuid.UUID) (*ds.ProcessFee, error) {
	var processFee ds.ProcessFee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		process, err := firstByPID[ds.Process](tx, "process", processPID)
		if err != nil {
			return err
		}
		fee, err := firstByPID[ds.Fee](tx, "fee", feePID)
		if err != nil {
			return err
		}

		processFee = ds.ProcessFee{ProcessID: process.ID, FeeID: fee.ID}
		return tx.Omit("Process", "Fee").Create(&processFee).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &processFee, nil
}

// UpdateProcessFee перепривязывает связь к другому процессу и/или тарифу
func (r *Repository) UpdateProcessFee(ctx context.Context, pid, processPID, feePID uuid.UUID) (*ds.ProcessFee, error) {
	var processFee *ds.ProcessFee
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		process, err := firstByPID[ds.Process](tx, "process", processPID)
		if err != nil {
			return err
		}
		fee, err := firstByPID[ds.Fee](tx, "fee", feePID)
		if err != nil {
			return err
		}

		processFee, err = updateByPID[ds.ProcessFee](tx, "process fee", pid, map[string]interface{}{
			"process_id": process.ID,
			"fee_id":     fee.ID,
		})
		return err
	})
	if err != nil {
		return nil, translate(err)
	}
	return processFee, nil
}

func (r *Repository) DeleteProcessFee(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.ProcessFee](r.db.WithContext(ctx), "process fee", pid)
}
