package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/appointment"
	"github.com/BruksfildServices01/barber-booking/internal/httperr"
)

const (
	codeInvalidRequest   = "invalid_request"
	codeStoreUnavailable = "store_unavailable"
	codeLockUnavailable  = "lock_unavailable"
)

// writeError maps a use-case error onto the HTTP error body.
func writeError(c *gin.Context, err error) {
	var ve *httperr.ValidationError

	switch {
	case errors.As(err, &ve):
		httperr.BadRequest(c, codeInvalidRequest, ve.Error())

	case httperr.IsBusiness(err, domain.CodeSlotUnavailable):
		httperr.BadRequest(c, domain.CodeSlotUnavailable, "Time slot not available")

	case httperr.IsBusiness(err, domain.CodeNotFound):
		httperr.NotFound(c, domain.CodeNotFound, "Appointment not found")

	case httperr.IsBusiness(err, domain.CodeInvalidState):
		httperr.BadRequest(c, domain.CodeInvalidState, "Appointment cannot change from its current status")

	case errors.Is(err, httperr.ErrLockUnavailable):
		_ = c.Error(err)
		httperr.Unavailable(c, codeLockUnavailable, "Barber schedule is busy, try again")

	default:
		_ = c.Error(err)
		httperr.Write(c, http.StatusInternalServerError, codeStoreUnavailable, "Storage is unavailable")
	}
}
