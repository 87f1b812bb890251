// Package handler exposes the chat service over HTTP.
package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"gomessaging/internal/chat/service"
	"gomessaging/internal/common"
	"gomessaging/internal/config"
	"gomessaging/internal/dbmysql"
)

// MessagingService is the part of service.ChatService the HTTP layer depends on.
type MessagingService interface {
	SendMessage(ctx context.Context, actorID string, in service.SendMessageInput) (*dbmysql.Message, error)
	GetMessage(ctx context.Context, actorID, messageID string) (*dbmysql.Message, error)
	ListMessages(ctx context.Context, actorID string, in service.ListMessagesInput) ([]*dbmysql.Message, int64, error)
	EditMessage(ctx context.Context, actorID, messageID, content string) (*dbmysql.Message, error)
	DeleteMessage(ctx context.Context, actorID, messageID string) (int64, error)
	MessageHistory(ctx context.Context, actorID, messageID string) ([]*dbmysql.MessageHistory, error)
	GetRoot(ctx context.Context, messageID string) (*dbmysql.Message, error)
	GetDepth(ctx context.Context, messageID string) (int, error)
	GetThreadMessages(ctx context.Context, actorID, messageID string) ([]*dbmysql.Message, error)
	GetThreadsForUser(ctx context.Context, userID string) ([]*dbmysql.Message, error)
	GetThreadedConversations(ctx context.Context, userA, userB string) ([]*dbmysql.Message, error)
	UnreadFor(ctx context.Context, userID string) ([]service.UnreadMessage, error)
	UnreadCount(ctx context.Context, userID string) (int64, error)
	MarkRead(ctx context.Context, userID string, messageIDs []string) (int64, error)
	MarkSingleRead(ctx context.Context, actorID, messageID string) error
}

var _ MessagingService = (*service.ChatService)(nil)

type ChatHandler struct {
	chatService MessagingService
	paging      config.PaginationConfig
	logger      *zap.Logger
}

func NewChatHandler(chatService MessagingService, cfg *config.Config, logger *zap.Logger) *ChatHandler {
	return &ChatHandler{
		chatService: chatService,
		paging:      cfg.Pagination,
		logger:      logger,
	}
}

// Register mounts the message routes. Fixed paths go first so {messageID} never captures them.
func (h *ChatHandler) Register(r *mux.Router) {
	r.HandleFunc("/messages", h.SendMessage).Methods(http.MethodPost)
	r.HandleFunc("/messages", h.ListMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/unread", h.UnreadMessages).Methods(http.MethodGet)
	r.HandleFunc("/messages/unread/count", h.UnreadCount).Methods(http.MethodGet)
	r.HandleFunc("/messages/read", h.MarkRead).Methods(http.MethodPost)

	r.HandleFunc("/messages/{messageID}", h.GetMessage).Methods(http.MethodGet)
	r.HandleFunc("/messages/{messageID}", h.EditMessage).Methods(http.MethodPatch)
	r.HandleFunc("/messages/{messageID}", h.DeleteMessage).Methods(http.MethodDelete)
	r.HandleFunc("/messages/{messageID}/thread", h.GetThread).Methods(http.MethodGet)
	r.HandleFunc("/messages/{messageID}/history", h.GetHistory).Methods(http.MethodGet)
	r.HandleFunc("/messages/{messageID}/depth", h.GetDepth).Methods(http.MethodGet)
	r.HandleFunc("/messages/{messageID}/read", h.MarkSingleRead).Methods(http.MethodPost)

	r.HandleFunc("/threads", h.GetThreads).Methods(http.MethodGet)
	r.HandleFunc("/conversations/{userID}/threads", h.GetConversationThreads).Methods(http.MethodGet)
}

func actor(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := common.UserIDFromContext(r.Context())
	if !ok {
		common.WriteError(w, http.StatusUnauthorized, "authorization required")
	}
	return userID, ok
}

func decode(w http.ResponseWriter, r *http.Request, dst interface{}) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func (h *ChatHandler) fail(w http.ResponseWriter, op string, err error, fields ...zap.Field) {
	fields = append(fields, zap.Error(err))
	if common.IsDomainError(err) {
		h.logger.Debug(op+" rejected", fields...)
	} else {
		h.logger.Error(op+" failed", fields...)
	}
	common.WriteDomainError(w, err)
}

// POST /messages
func (h *ChatHandler) SendMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	var req service.SendMessageInput
	if !decode(w, r, &req) {
		return
	}

	msg, err := h.chatService.SendMessage(r.Context(), userID, req)
	if err != nil {
		h.fail(w, "send message", err, zap.String("sender_id", userID))
		return
	}
	common.WriteJSON(w, http.StatusCreated, msg)
}

// GET /messages?with=&sender=&since=&until=&page=&page_size=
func (h *ChatHandler) ListMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	in := service.ListMessagesInput{
		WithUserID: q.Get("with"),
		SenderID:   q.Get("sender"),
	}
	var err error
	if in.Since, err = parseTime(q.Get("since")); err != nil {
		common.WriteError(w, http.StatusBadRequest, "since must be RFC3339")
		return
	}
	if in.Until, err = parseTime(q.Get("until")); err != nil {
		common.WriteError(w, http.StatusBadRequest, "until must be RFC3339")
		return
	}

	page := common.ParsePage(r, h.paging.PageSize, h.paging.MaxPageSize)
	in.Limit = page.PageSize
	in.Offset = page.Offset()

	messages, total, err := h.chatService.ListMessages(r.Context(), userID, in)
	if err != nil {
		h.fail(w, "list messages", err, zap.String("user_id", userID))
		return
	}
	common.WriteJSON(w, http.StatusOK, common.PagedResponse{
		Count:    total,
		Page:     page.Page,
		PageSize: page.PageSize,
		Results:  messages,
	})
}

func parseTime(v string) (*time.Time, error) {
	if v == "" {
		return nil, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil, err
	}
	t = t.UTC()
	return &t, nil
}

func (h *ChatHandler) GetMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	msg, err := h.chatService.GetMessage(r.Context(), userID, messageID)
	if err != nil {
		h.fail(w, "get message", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, msg)
}

type editRequest struct {
	Content string `json:"content"`
}

// PATCH /messages/{messageID}
func (h *ChatHandler) EditMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]
	var req editRequest
	if !decode(w, r, &req) {
		return
	}

	msg, err := h.chatService.EditMessage(r.Context(), userID, messageID, req.Content)
	if err != nil {
		h.fail(w, "edit message", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, msg)
}

func (h *ChatHandler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	n, err := h.chatService.DeleteMessage(r.Context(), userID, messageID)
	if err != nil {
		h.fail(w, "delete message", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{"deleted": n})
}

func (h *ChatHandler) GetThread(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	messages, err := h.chatService.GetThreadMessages(r.Context(), userID, messageID)
	if err != nil {
		h.fail(w, "get thread", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, messages)
}

func (h *ChatHandler) GetHistory(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	history, err := h.chatService.MessageHistory(r.Context(), userID, messageID)
	if err != nil {
		h.fail(w, "get message history", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, history)
}

type depthResponse struct {
	MessageID string `json:"message_id"`
	RootID    string `json:"root_id"`
	Depth     int    `json:"depth"`
}

// GET /messages/{messageID}/depth
func (h *ChatHandler) GetDepth(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	if _, err := h.chatService.GetMessage(r.Context(), userID, messageID); err != nil {
		h.fail(w, "get depth", err, zap.String("message_id", messageID))
		return
	}
	root, err := h.chatService.GetRoot(r.Context(), messageID)
	if err != nil {
		h.fail(w, "get root", err, zap.String("message_id", messageID))
		return
	}
	depth, err := h.chatService.GetDepth(r.Context(), messageID)
	if err != nil {
		h.fail(w, "get depth", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, depthResponse{MessageID: messageID, RootID: root.ID, Depth: depth})
}

func (h *ChatHandler) MarkSingleRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	messageID := mux.Vars(r)["messageID"]

	if err := h.chatService.MarkSingleRead(r.Context(), userID, messageID); err != nil {
		h.fail(w, "mark message read", err, zap.String("message_id", messageID))
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]string{"status": "marked as read"})
}

type markReadRequest struct {
	MessageIDs []string `json:"message_ids"`
}

// POST /messages/read marks every unread message when message_ids is empty or the body is absent.
func (h *ChatHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	var req markReadRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		common.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	n, err := h.chatService.MarkRead(r.Context(), userID, req.MessageIDs)
	if err != nil {
		h.fail(w, "mark messages read", err, zap.String("user_id", userID))
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{"marked": n})
}

func (h *ChatHandler) UnreadMessages(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}

	unread, err := h.chatService.UnreadFor(r.Context(), userID)
	if err != nil {
		h.fail(w, "list unread messages", err, zap.String("user_id", userID))
		return
	}
	if unread == nil {
		unread = []service.UnreadMessage{}
	}
	common.WriteJSON(w, http.StatusOK, unread)
}

func (h *ChatHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}

	count, err := h.chatService.UnreadCount(r.Context(), userID)
	if err != nil {
		h.fail(w, "count unread messages", err, zap.String("user_id", userID))
		return
	}
	common.WriteJSON(w, http.StatusOK, map[string]int64{"unread_count": count})
}

func (h *ChatHandler) GetThreads(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}

	threads, err := h.chatService.GetThreadsForUser(r.Context(), userID)
	if err != nil {
		h.fail(w, "list threads", err, zap.String("user_id", userID))
		return
	}
	common.WriteJSON(w, http.StatusOK, threads)
}

// GET /conversations/{userID}/threads
func (h *ChatHandler) GetConversationThreads(w http.ResponseWriter, r *http.Request) {
	userID, ok := actor(w, r)
	if !ok {
		return
	}
	otherID := mux.Vars(r)["userID"]

	threads, err := h.chatService.GetThreadedConversations(r.Context(), userID, otherID)
	if err != nil {
		h.fail(w, "list conversation threads", err, zap.String("user_id", userID), zap.String("other_id", otherID))
		return
	}
	common.WriteJSON(w, http.StatusOK, threads)
}
