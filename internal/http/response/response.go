package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	apperrors "github.com/funkyrave/funky-backend/internal/pkg/errors"
)

type APIError struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

type ErrorEnvelope struct {
	Error APIError `json:"error"`
}

func RespondError(c *gin.Context, status int, code string, err error) {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	c.JSON(status, ErrorEnvelope{
		Error: APIError{
			Message: msg,
			Code:    code,
		},
	})
}

func RespondOK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}

// RespondServiceError maps service sentinels onto HTTP statuses. Anything
// unmapped is treated as an internal error.
func RespondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrUnauthorized):
		RespondError(c, http.StatusUnauthorized, "unauthorized", err)
	case errors.Is(err, apperrors.ErrNotAdmin):
		RespondError(c, http.StatusForbidden, "not_admin", err)
	case errors.Is(err, apperrors.ErrNotTierUpdater):
		RespondError(c, http.StatusForbidden, "not_tier_updater", err)
	case errors.Is(err, apperrors.ErrNotFound):
		RespondError(c, http.StatusNotFound, "not_found", err)
	case errors.Is(err, apperrors.ErrCannotRemoveLastAdmin):
		RespondError(c, http.StatusConflict, "cannot_remove_last_admin", err)
	case errors.Is(err, apperrors.ErrExemptAddressCapReached):
		RespondError(c, http.StatusConflict, "exempt_address_cap_reached", err)
	case errors.Is(err, apperrors.ErrTierDowngradeNotAllowed):
		RespondError(c, http.StatusConflict, "tier_downgrade_not_allowed", err)
	case errors.Is(err, apperrors.ErrFeeTooHigh):
		RespondError(c, http.StatusUnprocessableEntity, "fee_too_high", err)
	case errors.Is(err, apperrors.ErrInvalidAddress):
		RespondError(c, http.StatusUnprocessableEntity, "invalid_address", err)
	case errors.Is(err, apperrors.ErrTierUpdaterMustBeContract):
		RespondError(c, http.StatusUnprocessableEntity, "tier_updater_must_be_contract", err)
	case errors.Is(err, apperrors.ErrFactoryNotRegistered):
		RespondError(c, http.StatusUnprocessableEntity, "factory_not_registered", err)
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		RespondError(c, http.StatusUnprocessableEntity, "insufficient_balance", err)
	case errors.Is(err, apperrors.ErrInsufficientAllowance):
		RespondError(c, http.StatusUnprocessableEntity, "insufficient_allowance", err)
	case errors.Is(err, apperrors.ErrInvalidArgument):
		RespondError(c, http.StatusBadRequest, "invalid_argument", err)
	default:
		RespondError(c, http.StatusInternalServerError, "internal", err)
	}
}
