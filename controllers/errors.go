package controllers

import (
	"errors"
	"log"
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError maps a service-layer sentinel to the nearest HTTP
// status. Anything unrecognized is a 500 with a generic message; the detail
// goes to the log, not the client.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrRoomTypeNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrHistoryNotFound),
		errors.Is(err, services.ErrServiceNotFound),
		errors.Is(err, services.ErrLineNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrInvalidQuantity),
		errors.Is(err, services.ErrInvalidStatus):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrRoomNotAvailable),
		errors.Is(err, services.ErrRoomOccupied),
		errors.Is(err, services.ErrRoomNotInUse),
		errors.Is(err, services.ErrAlreadyCheckedOut),
		errors.Is(err, services.ErrRoomTypeLocked),
		errors.Is(err, services.ErrStatusConflict):
		utils.JSONError(c, http.StatusConflict, err.Error())
	default:
		log.Printf("unhandled service error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
