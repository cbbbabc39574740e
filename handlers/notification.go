package handlers

import (
	"net/http"

	"autohub/models"
	"autohub/services/notification"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	Notifications notification.NotificationService
}

func NewNotificationHandler(svc notification.NotificationService) *NotificationHandler {
	return &NotificationHandler{Notifications: svc}
}

func (h *NotificationHandler) ListHandler(c *gin.Context) {
	list, err := h.Notifications.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *NotificationHandler) MarkAllReadHandler(c *gin.Context) {
	n, err := h.Notifications.MarkAllRead(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"updated": n})
}

func (h *NotificationHandler) GetPrefsHandler(c *gin.Context) {
	prefs, err := h.Notifications.Prefs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

// TogglePrefHandler flips one channel: {"channel": "sms"}.
func (h *NotificationHandler) TogglePrefHandler(c *gin.Context) {
	var req struct {
		Channel models.NotificationChannel `json:"channel" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	prefs, err := h.Notifications.TogglePref(c.Request.Context(), req.Channel)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prefs)
}

func (h *NotificationHandler) SendTestHandler(c *gin.Context) {
	var req struct {
		Channel models.NotificationChannel `json:"channel" binding:"required"`
		To      string                     `json:"to"`
		Body    string                     `json:"body"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err)
		return
	}
	if err := h.Notifications.SendTest(c.Request.Context(), req.Channel, req.To, req.Body); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusAccepted, gin.H{"status": "sent", "channel": req.Channel})
}
