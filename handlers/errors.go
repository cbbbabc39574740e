package handlers

import (
	"errors"
	"net/http"

	"autohub/services/booking"
	"autohub/services/notification"
	"autohub/services/payment"
	"autohub/services/provider"
	"autohub/services/review"
	"autohub/services/user"
	"autohub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errorStatus = []struct {
	err    error
	status int
}{
	{user.ErrEmailTaken, http.StatusConflict},
	{user.ErrInvalidCredentials, http.StatusUnauthorized},
	{user.ErrUserInactive, http.StatusForbidden},
	{user.ErrUserNotFound, http.StatusNotFound},
	{user.ErrLoginAsDisabled, http.StatusForbidden},
	{provider.ErrProviderNotFound, http.StatusNotFound},
	{provider.ErrProviderNotApproved, http.StatusUnprocessableEntity},
	{booking.ErrBookingNotFound, http.StatusNotFound},
	{booking.ErrForbidden, http.StatusForbidden},
	{booking.ErrInvalidTransition, http.StatusConflict},
	{review.ErrReviewNotFound, http.StatusNotFound},
	{review.ErrInvalidVerdict, http.StatusBadRequest},
	{payment.ErrPaymentNotFound, http.StatusNotFound},
	{payment.ErrGatewayUnavailable, http.StatusServiceUnavailable},
	{payment.ErrLoginRequired, http.StatusUnauthorized},
	{payment.ErrNotRefundable, http.StatusConflict},
	{payment.ErrForbidden, http.StatusForbidden},
	{notification.ErrUnknownChannel, http.StatusBadRequest},
	{notification.ErrChannelDisabled, http.StatusConflict},
	{notification.ErrEmailNotConfigured, http.StatusServiceUnavailable},
}

// respondError maps service errors onto HTTP responses. Unknown errors become 500s.
func respondError(c *gin.Context, err error) {
	var verr *utils.ValidationError
	if errors.As(err, &verr) {
		utils.JSONValidationError(c, verr)
		return
	}
	for _, m := range errorStatus {
		if errors.Is(err, m.err) {
			utils.JSONError(c, m.status, m.err.Error(), "")
			return
		}
	}
	getLogger(c).Error("Unhandled service error", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Internal Server Error", "")
}

func badRequest(c *gin.Context, err error) {
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
