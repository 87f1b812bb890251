package wire

import (
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"gomessaging/internal/chat/handler"
	"gomessaging/internal/chat/service"
	"gomessaging/internal/common"
	"gomessaging/internal/config"
	"gomessaging/internal/dbmysql"
	"gomessaging/internal/metrics"
	"gomessaging/internal/notif"
	"gomessaging/internal/user"
)

type Application struct {
	Config              *config.Config
	Logger              *zap.Logger
	DB                  *gorm.DB
	Metrics             *metrics.Metrics
	Tokens              *common.TokenManager
	Limiter             *common.IPRateLimiter
	ChatHandler         *handler.ChatHandler
	NotificationHandler *notif.NotificationHandler
	UserHandler         *user.Handler
}

func ProvideConfig() *config.Config {
	return config.LoadConfig()
}

func ProvideLogger(cfg *config.Config) (*zap.Logger, error) {
	return common.NewLogger(cfg.Logging)
}

// ProvideDatabaseConnection opens the configured database and migrates the schema.
func ProvideDatabaseConnection(cfg *config.Config, logger *zap.Logger) (*gorm.DB, error) {
	db, err := dbmysql.NewDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}
	if err := dbmysql.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("migration failed: %w", err)
	}
	return db, nil
}

func ProvideMetrics() *metrics.Metrics {
	return metrics.NewDefault()
}

func ProvideTokenManager(cfg *config.Config) *common.TokenManager {
	return common.NewTokenManager(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLHrs)*time.Hour)
}

func ProvideRateLimiter(cfg *config.Config, logger *zap.Logger) *common.IPRateLimiter {
	return common.NewIPRateLimiter(cfg.RateLimit.PerMinute, cfg.RateLimit.Burst, logger)
}

// ProvideNotificationManager subscribes the observers that run inside every message transaction.
func ProvideNotificationManager(cfg *config.Config, m *metrics.Metrics, logger *zap.Logger) *notif.NotificationManager {
	nm := notif.NewNotificationManager(logger)
	nm.Subscribe(notif.NewDatabaseObserver(cfg.Notification.PreviewLength, m))
	nm.Subscribe(notif.NewMetricsObserver(m))
	nm.Subscribe(notif.NewLogObserver(logger))
	return nm
}

func ProvideChatService(gw service.Gateway, propagator service.Propagator, m *metrics.Metrics, logger *zap.Logger) *service.ChatService {
	return service.NewChatService(gw, propagator, m, logger)
}
