package user

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *dbmysql.User) error
	GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error)
	GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error)
	GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error)
	CheckUserExists(ctx context.Context, username, email string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser maps a unique index violation to ErrAlreadyExists. The connection must be opened with TranslateError.
func (r *userRepository) CreateUser(ctx context.Context, user *dbmysql.User) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return fmt.Errorf("user %s: %w", user.Username, common.ErrAlreadyExists)
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

func (r *userRepository) getBy(ctx context.Context, column, value string) (*dbmysql.User, error) {
	var user dbmysql.User
	err := r.db.WithContext(ctx).Where(column+" = ?", value).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("user %s: %w", value, common.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetUserByID(ctx context.Context, userID string) (*dbmysql.User, error) {
	return r.getBy(ctx, "id", userID)
}

func (r *userRepository) GetUserByUsername(ctx context.Context, username string) (*dbmysql.User, error) {
	return r.getBy(ctx, "username", username)
}

func (r *userRepository) GetUserByEmail(ctx context.Context, email string) (*dbmysql.User, error) {
	return r.getBy(ctx, "email", email)
}

func (r *userRepository) CheckUserExists(ctx context.Context, username, email string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&dbmysql.User{}).
		Where("username = ? OR email = ?", username, email).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return count > 0, nil
}
