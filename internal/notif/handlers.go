package notif

import (
	"net/http"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gomessaging/internal/common"
	"gomessaging/internal/config"
)

type NotificationHandler struct {
	service *NotificationService
	paging  config.PaginationConfig
	logger  *zap.Logger
}

func NewNotificationHandler(service *NotificationService, cfg *config.Config, logger *zap.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		paging:  cfg.Pagination,
		logger:  logger,
	}
}

// Register mounts the notification routes on an authenticated subrouter.
func (h *NotificationHandler) Register(r *mux.Router) {
	r.HandleFunc("/notifications", h.GetUserNotifications).Methods(http.MethodGet)
	r.HandleFunc("/notifications/unread/count", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/notifications/{notificationID}/read", h.MarkAsRead).Methods(http.MethodPut)
}

// GET /notifications?page=&page_size=
func (h *NotificationHandler) GetUserNotifications(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	page := common.ParsePage(r, h.paging.PageSize, h.paging.MaxPageSize)
	notifications, total, err := h.service.GetUserNotifications(r.Context(), userID, page.PageSize, page.Offset())
	if err != nil {
		h.logger.Error("failed to get user notifications", zap.String("user_id", userID), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, common.PagedResponse{
		Count:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  notifications,
	})
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	count, err := h.service.UnreadCount(r.Context(), userID)
	if err != nil {
		h.logger.Error("failed to count unread notifications", zap.String("user_id", userID), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{"unread_count": count})
}

func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "authorization required")
		return
	}

	notificationID := mux.Vars(r)["notificationID"]
	if notificationID == "" {
		common.WriteError(w, http.StatusBadRequest, "notification_id is required")
		return
	}

	if err := h.service.MarkAsRead(r.Context(), notificationID, userID); err != nil {
		h.logger.Warn("failed to mark notification as read",
			zap.String("notification_id", notificationID), zap.Error(err))
		common.WriteDomainError(w, err)
		return
	}

	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "marked as read"})
}
