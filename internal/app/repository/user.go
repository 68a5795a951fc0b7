package repository

import (
	"context"
	"errors"

	"backoffice/internal/app/ds"
	"backoffice/internal/app/role"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Методы для пользователей

func (r *Repository) GetUserByPID(ctx context.Context, pid uuid.UUID) (*ds.User, error) {
	return firstByPID[ds.User](r.db.WithContext(ctx), "user", pid)
}

func (r *Repository) GetUserByLogin(ctx context.Context, login string) (*ds.User, error) {
	var user ds.User
	err := r.db.WithContext(ctx).Where("login = ?", login).First(&user).Error
	if err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

func (r *Repository) UserExistsByLogin(ctx context.Context, login string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ds.User{}).Where("login = ?", login).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// CreateUser сохраняет пользователя, пароль должен быть уже захеширован
func (r *Repository) CreateUser(ctx context.Context, login, passwordHash, name string, userRole role.Role) (*ds.User, error) {
	user := ds.User{
		Login:    login,
		Password: passwordHash,
		Name:     name,
		Role:     userRole,
	}

	if err := r.db.WithContext(ctx).Create(&user).Error; err != nil {
		return nil, translate(err)
	}

	return &user, nil
}

// EnsureUser создаёт пользователя, если логин ещё свободен
func (r *Repository) EnsureUser(ctx context.Context, login, passwordHash, name string, userRole role.Role) (*ds.User, error) {
	user, err := r.GetUserByLogin(ctx, login)
	if err == nil {
		return user, nil
	}
	if !errors.Is(err, ErrNotFound) && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	return r.CreateUser(ctx, login, passwordHash, name, userRole)
}
