package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"bfsi-los-backend/internal/adapter/middleware"
	notifDomain "bfsi-los-backend/internal/domain/notification"
	"bfsi-los-backend/internal/usecase/notification"
)

type NotificationHandler struct {
	uc          *notification.Usecase
	reminderAge time.Duration
}

func NewNotificationHandler(uc *notification.Usecase, reminderAge time.Duration) *NotificationHandler {
	return &NotificationHandler{uc: uc, reminderAge: reminderAge}
}

func (h *NotificationHandler) ListByUser(c echo.Context) error {
	out, err := h.uc.ListByUser(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to fetch notifications"})
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) CountUnread(c echo.Context) error {
	n, err := h.uc.CountUnread(c.Request().Context(), c.Param("userId"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to count notifications"})
	}
	return c.JSON(http.StatusOK, map[string]int64{"count": n})
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
	}
	n, err := h.uc.MarkRead(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, notifDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to mark notification read"})
	}
	return c.JSON(http.StatusOK, n)
}

func (h *NotificationHandler) MarkAllRead(c echo.Context) error {
	if err := h.uc.MarkAllRead(c.Request().Context(), c.Param("userId")); err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to mark notifications read"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "All notifications marked as read"})
}

func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var in notification.CreateInput
	if err := c.Bind(&in); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&in); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	n, err := h.uc.Create(c.Request().Context(), in)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create notification"})
	}
	return c.JSON(http.StatusCreated, n)
}

type leadReminderReq struct {
	UserID       string `json:"user_id" validate:"required"`
	LeadID       string `json:"lead_id" validate:"required,leadref"`
	BusinessName string `json:"business_name"`
}

func (h *NotificationHandler) CreateLeadReminder(c echo.Context) error {
	var req leadReminderReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Error:   "validation failed",
			Details: ToFieldErrors(err),
		})
	}
	n, err := h.uc.CreateLeadReminder(c.Request().Context(), req.UserID, req.LeadID, req.BusinessName)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to create reminder"})
	}
	return c.JSON(http.StatusCreated, n)
}

// SweepLeadReminders is invoked by an external scheduler.
func (h *NotificationHandler) SweepLeadReminders(c echo.Context) error {
	res, err := h.uc.SweepLeadReminders(c.Request().Context(), middleware.PrincipalFrom(c), h.reminderAge)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "reminder sweep failed"})
	}
	return c.JSON(http.StatusOK, res)
}

func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, ok := pathID(c, "id")
	if !ok {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
	}
	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		if errors.Is(err, notifDomain.ErrNotFound) {
			return c.JSON(http.StatusNotFound, ErrorResponse{Error: "Notification not found"})
		}
		return c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to delete notification"})
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Notification deleted"})
}
