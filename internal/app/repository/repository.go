package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var (
	// ErrNotFound запись с указанным pid не найдена
	ErrNotFound = errors.New("record not found")
	// ErrConflict нарушение уникальности или внешнего ключа
	ErrConflict = errors.New("constraint violation")
)

type Repository struct {
	db *gorm.DB
}

// New подключается к Postgres. Схема создаётся отдельно (cmd/migrate).
func New(dsn string) (*Repository, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	logrus.Info("connected to database")

	return &Repository{
		db: db,
	}, nil
}

// NewWithDB оборачивает уже открытое подключение
func NewWithDB(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// DB возвращает подключение (для миграций и бэкапов)
func (r *Repository) DB() *gorm.DB {
	return r.db
}

// Ping проверяет доступность базы
func (r *Repository) Ping(ctx context.Context) error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (r *Repository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func notFound(entity string, pid uuid.UUID) error {
	return fmt.Errorf("%s %s: %w", entity, pid, ErrNotFound)
}

// translate приводит ошибки gorm к ошибкам репозитория
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrNotFound), errors.Is(err, ErrConflict):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConflict, err)
	}
	return err
}

// firstByPID ищет одну запись по внешнему идентификатору
func firstByPID[T any](db *gorm.DB, entity string, pid uuid.UUID) (*T, error) {
	var row T
	err := db.Where("pid = ?", pid).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, notFound(entity, pid)
	}
	if err != nil {
		return nil, translate(err)
	}
	return &row, nil
}

func listAll[T any](db *gorm.DB) ([]T, error) {
	var rows []T
	if err := db.Order("id").Find(&rows).Error; err != nil {
		return nil, translate(err)
	}
	return rows, nil
}

// deleteByPID удаляет запись, зависимые строки удаляет каскад в БД
func deleteByPID[T any](db *gorm.DB, entity string, pid uuid.UUID) error {
	result := db.Where("pid = ?", pid).Delete(new(T))
	if result.Error != nil {
		return translate(result.Error)
	}
	if result.RowsAffected == 0 {
		return notFound(entity, pid)
	}
	return nil
}

// updateByPID перезаписывает поля записи и возвращает её актуальное состояние
func updateByPID[T any](db *gorm.DB, entity string, pid uuid.UUID, fields map[string]interface{}) (*T, error) {
	row, err := firstByPID[T](db, entity, pid)
	if err != nil {
		return nil, err
	}
	if err := db.Model(row).Updates(fields).Error; err != nil {
		return nil, translate(err)
	}
	return firstByPID[T](db, entity, pid)
}
