package rest

import (
	"net/http"

	"edufleet-backend/internal/service"
)

// NotificationHandler exposes in-app notification endpoints.
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// List returns the authenticated user's notifications, newest first.
// GET /api/v1/notifications?page=&page_size=
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	page, pageSize := paging(r)

	notifications, total, err := h.notificationSvc.GetNotifications(r.Context(), userID, page, pageSize)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]any{
		"notifications": notifications,
		"total":         total,
		"page":          page,
		"page_size":     pageSize,
	})
}

// MarkAsRead marks one of the user's notifications as read.
// POST /api/v1/notifications/{id}/read
func (h *NotificationHandler) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	userID, err := UserIDFromContext(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.notificationSvc.MarkAsRead(r.Context(), userID, id); err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"status": "read"})
}
