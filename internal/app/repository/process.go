package repository

import (
	"context"

	"backoffice/internal/app/ds"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Процессы всегда отдаются вместе с привязанными тарифами
func preloadProcessFees(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Fees", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		Preload("Fees.Fee")
}

func (r *Repository) ListProcesses(ctx context.Context) ([]ds.Process, error) {
	return listAll[ds.Process](preloadProcessFees(r.db.WithContext(ctx)))
}

func (r *Repository) GetProcess(ctx context.Context, pid uuid.UUID) (*ds.Process, error) {
	return firstByPID[ds.Process](preloadProcessFees(r.db.WithContext(ctx)), "process", pid)
}

func (r *Repository) CreateProcess(ctx context.Context, caseType string) (*ds.Process, error) {
	process := ds.Process{CaseType: caseType}
	if err := r.db.WithContext(ctx).Create(&process).Error; err != nil {
		return nil, translate(err)
	}
	return &process, nil
}

func (r *Repository) UpdateProcess(ctx context.Context, pid uuid.UUID, caseType string) (*ds.Process, error) {
	_, err := updateByPID[ds.Process](r.db.WithContext(ctx), "process", pid, map[string]interface{}{
		"case_type": caseType,
	})
	if err != nil {
		return nil, err
	}
	return r.GetProcess(ctx, pid)
}

func (r *Repository) DeleteProcess(ctx context.Context, pid uuid.UUID) error {
	return deleteByPID[ds.Process](r.db.WithContext(ctx), "process", pid)
}
