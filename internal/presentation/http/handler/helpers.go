package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sonsardina/framing-api/internal/domain/pricing"
	"github.com/sonsardina/framing-api/internal/presentation/http/dto/response"
	"github.com/sonsardina/framing-api/pkg/apperror"
)

// PricingFailedMessage is returned for pricing failures other than size errors
const PricingFailedMessage = "Error calculando el precio. Intente de nuevo."

// parseUUIDParam reads a uuid path parameter, answering 400 when malformed
func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		response.BadRequest(c, "Invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// pricingError answers a failed calculation. Size errors and application
// errors reach the client verbatim; anything else is attached to the request
// for the logger and replaced by a generic message.
func pricingError(c *gin.Context, err error) {
	var sizeErr *pricing.SizeError
	if errors.As(err, &sizeErr) || apperror.IsAppError(err) {
		response.Error(c, err)
		return
	}
	_ = c.Error(err)
	response.ErrorWithCode(c, apperror.GetAppError(err).Code, PricingFailedMessage)
}
