package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gomessaging/internal/chat/service"
	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/notif"
)

type UserService interface {
	RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error)
	LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error)
	GetProfile(ctx context.Context, userID string) (*dbmysql.User, error)
	DeleteAccount(ctx context.Context, actorID, userID string) (*service.CascadeResult, error)
}

// SystemNotifier sends the welcome notification after registration.
type SystemNotifier interface {
	SendSystemNotification(ctx context.Context, userID, title, content string) (*notif.NotificationResponse, error)
}

// AccountDeleter runs the account deletion cascade.
type AccountDeleter interface {
	DeleteAccount(ctx context.Context, actorID, userID string) (*service.CascadeResult, error)
}

type userService struct {
	userRepo UserRepository
	tokens   *common.TokenManager
	notifier SystemNotifier
	deleter  AccountDeleter
	logger   *zap.Logger
}

func NewUserService(userRepo UserRepository, tokens *common.TokenManager, notifier SystemNotifier, deleter AccountDeleter, logger *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		tokens:   tokens,
		notifier: notifier,
		deleter:  deleter,
		logger:   logger,
	}
}

func (s *userService) RegisterUser(ctx context.Context, username, email, password string) (*dbmysql.User, string, error) {
	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))

	if err := common.ValidateUsername(username); err != nil {
		return nil, "", err
	}
	if err := common.ValidateEmail(email); err != nil {
		return nil, "", err
	}
	if err := common.ValidatePassword(password); err != nil {
		return nil, "", err
	}

	exists, err := s.userRepo.CheckUserExists(ctx, username, email)
	if err != nil {
		return nil, "", err
	}
	if exists {
		return nil, "", fmt.Errorf("username or email: %w", common.ErrAlreadyExists)
	}

	hashed, err := common.HashPassword(password)
	if err != nil {
		return nil, "", err
	}

	user := &dbmysql.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hashed,
	}
	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}

	// registration stands even when the welcome notification cannot be written
	if _, err := s.notifier.SendSystemNotification(ctx, user.ID,
		"Welcome to GoMessaging", fmt.Sprintf("Hi %s, your account is ready.", user.Username)); err != nil {
		s.logger.Warn("welcome notification failed", zap.String("user_id", user.ID), zap.Error(err))
	}

	s.logger.Info("user registered", zap.String("user_id", user.ID), zap.String("username", user.Username))
	return user, token, nil
}

func (s *userService) LoginUser(ctx context.Context, username, password string) (*dbmysql.User, string, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", common.NewValidationError("credentials", "username and password required")
	}

	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return nil, "", fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
		}
		return nil, "", err
	}

	if err := common.CheckPassword(password, user.PasswordHash); err != nil {
		return nil, "", fmt.Errorf("invalid credentials: %w", common.ErrUnauthorized)
	}

	token, err := s.tokens.GenerateToken(user.ID, user.Username)
	if err != nil {
		return nil, "", err
	}
	return user, token, nil
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*dbmysql.User, error) {
	return s.userRepo.GetUserByID(ctx, userID)
}

func (s *userService) DeleteAccount(ctx context.Context, actorID, userID string) (*service.CascadeResult, error) {
	return s.deleter.DeleteAccount(ctx, actorID, userID)
}
