package controllers

import (
	"net/http"

	"frontdesk-backend/services"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
)

// HistoryController fronts the session state machine: check-in, check-out,
// history queries, and the room edits the machine constrains (status and
// pricing-tier reassignment).
type HistoryController struct {
	Histories *services.HistoryService
}

func NewHistoryController(svc *services.HistoryService) *HistoryController {
	return &HistoryController{Histories: svc}
}

func (ctrl *HistoryController) GetHistories(c *gin.Context) {
	histories, err := ctrl.Histories.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, histories)
}

func (ctrl *HistoryController) GetHistoryByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	history, err := ctrl.Histories.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (ctrl *HistoryController) GetHistoriesByRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	histories, err := ctrl.Histories.ListByRoom(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, histories)
}

// CreateHistory is check-in.
func (ctrl *HistoryController) CreateHistory(c *gin.Context) {
	var payload services.CheckInInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	history, err := ctrl.Histories.CheckIn(payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, history)
}

// UpdateHistory edits guest fields on an open session, or performs check-out
// when the payload carries isCheckOut. The server computes and persists the
// checkout total itself; any client-supplied totalPrice is ignored.
func (ctrl *HistoryController) UpdateHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload services.UpdateHistoryInput
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	if payload.IsCheckOut {
		history, err := ctrl.Histories.CheckOut(id, payload.EndTime)
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, history)
		return
	}

	history, err := ctrl.Histories.Update(id, payload)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, history)
}

func (ctrl *HistoryController) DeleteHistory(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	if err := ctrl.Histories.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "History deleted successfully"})
}

type updateRoomStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

func (ctrl *HistoryController) UpdateRoomStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateRoomStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.Histories.UpdateRoomStatus(id, payload.Status)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}

type assignRoomTypePayload struct {
	RoomTypeID *uint `json:"roomTypeID"`
}

func (ctrl *HistoryController) AssignRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload assignRoomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	room, err := ctrl.Histories.AssignRoomType(id, payload.RoomTypeID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, room)
}
