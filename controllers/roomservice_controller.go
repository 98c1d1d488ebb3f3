package controllers

import (
	"net/http"
	"strconv"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

type RoomServiceController struct {
	Ledger *services.RoomServiceService
}

func NewRoomServiceController(svc *services.RoomServiceService) *RoomServiceController {
	return &RoomServiceController{Ledger: svc}
}

// AddRoomServices merges a batch of service requests into the session's
// ledger and returns the refreshed history.
func (ctrl *RoomServiceController) AddRoomServices(c *gin.Context) {
	var payload services.AddServicesInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if len(payload.Services) == 0 {
		utils.JSONError(c, http.StatusBadRequest, "services list is empty")
		return
	}

	history, err := ctrl.Ledger.AddServices(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

type setQuantityPayload struct {
	Quantity int `json:"quantity" binding:"required"`
}

func (ctrl *RoomServiceController) SetQuantity(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload setQuantityPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	line, err := ctrl.Ledger.SetQuantity(id, payload.Quantity)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, line)
}

// DeleteRoomService removes one ledger line by its id.
func (ctrl *RoomServiceController) DeleteRoomService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.Ledger.DeleteLine(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room service removed"})
}

// DeleteRoomServiceByPair is the legacy query-param keying
// (?roomId=&serviceId=) kept for callers without the line id.
func (ctrl *RoomServiceController) DeleteRoomServiceByPair(c *gin.Context) {
	roomID, err1 := strconv.ParseUint(c.Query("roomId"), 10, 32)
	serviceID, err2 := strconv.ParseUint(c.Query("serviceId"), 10, 32)
	if err1 != nil || err2 != nil {
		utils.JSONError(c, http.StatusBadRequest, "roomId and serviceId query params are required")
		return
	}

	if err := ctrl.Ledger.DeleteByRoomAndService(uint(roomID), uint(serviceID)); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room service removed"})
}
