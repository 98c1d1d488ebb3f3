package controllers

import (
	"errors"
	"net/http"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func GetRequests(c *gin.Context) {
	var requests []models.Request
	if err := config.DB.Preload("User").Order("created_at DESC").Find(&requests).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list requests")
		return
	}
	c.JSON(http.StatusOK, requests)
}

type requestPayload struct {
	UserID  uint   `json:"userID" binding:"required"`
	Title   string `json:"title" binding:"required"`
	Content string `json:"content"`
}

// CreateRequest opens a staff ticket. Status always starts at Pending; any
// client-supplied status is ignored.
func CreateRequest(c *gin.Context) {
	var payload requestPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, payload.UserID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user")
		return
	}

	request := models.Request{
		UserID:  payload.UserID,
		Title:   payload.Title,
		Content: payload.Content,
		Status:  models.RequestStatusPending,
	}
	if err := config.DB.Create(&request).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create request")
		return
	}

	config.DB.Preload("User").First(&request, request.ID)
	c.JSON(http.StatusCreated, request)
}

type updateRequestStatusPayload struct {
	Status string `json:"status" binding:"required"`
}

// UpdateRequestStatus mutates status only; any status may move to any other.
func UpdateRequestStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload updateRequestStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if !models.ValidRequestStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status")
		return
	}

	var request models.Request
	if err := config.DB.Preload("User").First(&request, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "request not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load request")
		return
	}

	if err := config.DB.Model(&request).Update("status", payload.Status).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update request")
		return
	}
	request.Status = payload.Status
	c.JSON(http.StatusOK, request)
}

func DeleteRequest(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Request{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete request")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "request not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Request deleted"})
}
