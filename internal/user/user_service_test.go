package user

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gomessaging/internal/chat/service"
	"gomessaging/internal/common"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/notif"
)

type serviceMocks struct {
	repo     *MockUserRepository
	notifier *MockSystemNotifier
	deleter  *MockAccountDeleter
	tokens   *common.TokenManager
}

func newTestService(t *testing.T) (UserService, serviceMocks) {
	ctrl := gomock.NewController(t)
	m := serviceMocks{
		repo:     NewMockUserRepository(ctrl),
		notifier: NewMockSystemNotifier(ctrl),
		deleter:  NewMockAccountDeleter(ctrl),
		tokens:   common.NewTokenManager("test-secret", time.Hour),
	}
	return NewUserService(m.repo, m.tokens, m.notifier, m.deleter, zap.NewNop()), m
}

func TestUserService_RegisterUser(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		username    string
		email       string
		password    string
		setup       func(m serviceMocks)
		wantErr     error
		errContains string
	}{
		{
			name:     "success",
			username: "alice",
			email:    "Alice@Example.com",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().CheckUserExists(ctx, "alice", "alice@example.com").Return(false, nil)
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).DoAndReturn(
					func(_ context.Context, u *dbmysql.User) error {
						require.NotEmpty(t, u.ID)
						require.NoError(t, common.CheckPassword("Password123", u.PasswordHash))
						return nil
					})
				m.notifier.EXPECT().SendSystemNotification(ctx, gomock.Any(), "Welcome to GoMessaging", gomock.Any()).
					Return(&notif.NotificationResponse{ID: "n1"}, nil)
			},
		},
		{
			name:     "welcome notification failure does not fail registration",
			username: "alice2",
			email:    "alice2@example.com",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().CheckUserExists(ctx, "alice2", "alice2@example.com").Return(false, nil)
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).Return(nil)
				m.notifier.EXPECT().SendSystemNotification(ctx, gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil, errors.New("db is down"))
			},
		},
		{
			name:     "duplicate username",
			username: "bob",
			email:    "bob@example.com",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().CheckUserExists(ctx, "bob", "bob@example.com").Return(true, nil)
			},
			wantErr: common.ErrAlreadyExists,
		},
		{
			name:        "invalid username",
			username:    "!",
			email:       "x@y.com",
			password:    "Password123",
			setup:       func(serviceMocks) {},
			wantErr:     common.ErrValidation,
			errContains: "username",
		},
		{
			name:        "invalid email",
			username:    "alicegood",
			email:       "bademail",
			password:    "Password123",
			setup:       func(serviceMocks) {},
			wantErr:     common.ErrValidation,
			errContains: "email",
		},
		{
			name:        "invalid password",
			username:    "alicia",
			email:       "alic@g.com",
			password:    "short",
			setup:       func(serviceMocks) {},
			wantErr:     common.ErrValidation,
			errContains: "password",
		},
		{
			name:     "repo failure exist check",
			username: "alicefail",
			email:    "alice@fail.com",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().CheckUserExists(ctx, "alicefail", "alice@fail.com").Return(false, errors.New("db is down"))
			},
			errContains: "db is down",
		},
		{
			name:     "repo failure create user",
			username: "alicefail2",
			email:    "alice2@fail.com",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().CheckUserExists(ctx, "alicefail2", "alice2@fail.com").Return(false, nil)
				m.repo.EXPECT().CreateUser(ctx, gomock.Any()).
					Return(fmt.Errorf("user alicefail2: %w", common.ErrAlreadyExists))
			},
			wantErr: common.ErrAlreadyExists,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tc.setup(m)

			user, token, err := svc.RegisterUser(ctx, tc.username, tc.email, tc.password)
			if tc.wantErr != nil || tc.errContains != "" {
				require.Error(t, err)
				if tc.wantErr != nil {
					require.ErrorIs(t, err, tc.wantErr)
				}
				if tc.errContains != "" {
					require.Contains(t, err.Error(), tc.errContains)
				}
				require.Nil(t, user)
				require.Empty(t, token)
				return
			}

			require.NoError(t, err)
			require.NotNil(t, user)
			require.Equal(t, tc.username, user.Username)

			claims, err := m.tokens.ValidToken(token)
			require.NoError(t, err)
			require.Equal(t, user.ID, claims.UserID)
		})
	}
}

func TestUserService_LoginUser(t *testing.T) {
	ctx := context.Background()
	hash, err := common.HashPassword("Password123")
	require.NoError(t, err)
	stored := &dbmysql.User{ID: "u1", Username: "alice", PasswordHash: hash}

	tests := []struct {
		name     string
		username string
		password string
		setup    func(m serviceMocks)
		wantErr  error
	}{
		{
			name:     "correct credentials",
			username: "alice",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)
			},
		},
		{
			name:     "wrong password",
			username: "alice",
			password: "nope-nope",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().GetUserByUsername(ctx, "alice").Return(stored, nil)
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:     "unknown username",
			username: "ghost",
			password: "Password123",
			setup: func(m serviceMocks) {
				m.repo.EXPECT().GetUserByUsername(ctx, "ghost").Return(nil, fmt.Errorf("user ghost: %w", common.ErrNotFound))
			},
			wantErr: common.ErrUnauthorized,
		},
		{
			name:     "missing fields",
			username: "",
			password: "",
			setup:    func(serviceMocks) {},
			wantErr:  common.ErrValidation,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			svc, m := newTestService(t)
			tc.setup(m)

			user, token, err := svc.LoginUser(ctx, tc.username, tc.password)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				require.Nil(t, user)
				require.Empty(t, token)
				return
			}
			require.NoError(t, err)
			require.Equal(t, "u1", user.ID)
			require.NotEmpty(t, token)
		})
	}
}

func TestUserService_DeleteAccountDelegates(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.deleter.EXPECT().DeleteAccount(ctx, "u1", "u1").
		Return(&service.CascadeResult{UserID: "u1", MessagesDeleted: 4}, nil)

	res, err := svc.DeleteAccount(ctx, "u1", "u1")
	require.NoError(t, err)
	require.Equal(t, int64(4), res.MessagesDeleted)
}

func TestUserService_GetProfile(t *testing.T) {
	ctx := context.Background()
	svc, m := newTestService(t)

	m.repo.EXPECT().GetUserByID(ctx, "u1").Return(&dbmysql.User{ID: "u1", Username: "alice"}, nil)
	user, err := svc.GetProfile(ctx, "u1")
	require.NoError(t, err)
	require.Equal(t, "alice", user.Username)
}
