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

func GetRoomTypes(c *gin.Context) {
	var types []models.RoomType
	if err := config.DB.Find(&types).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list room types")
		return
	}
	c.JSON(http.StatusOK, types)
}

func GetRoomTypeByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var rt models.RoomType
	if err := config.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room type")
		return
	}
	c.JSON(http.StatusOK, rt)
}

type roomTypePayload struct {
	TypeName          string  `json:"typeName" binding:"required"`
	BasePrice         float64 `json:"basePrice"`
	HourThreshold     int     `json:"hourThreshold"`
	OverchargePerHour float64 `json:"overchargePerHour"`
}

func CreateRoomType(c *gin.Context) {
	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	rt := models.RoomType{
		TypeName:          payload.TypeName,
		BasePrice:         payload.BasePrice,
		HourThreshold:     payload.HourThreshold,
		OverchargePerHour: payload.OverchargePerHour,
	}
	if err := config.DB.Create(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room type")
		return
	}
	c.JSON(http.StatusCreated, rt)
}

func UpdateRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomTypePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var rt models.RoomType
	if err := config.DB.First(&rt, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room type not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room type")
		return
	}

	rt.TypeName = payload.TypeName
	rt.BasePrice = payload.BasePrice
	rt.HourThreshold = payload.HourThreshold
	rt.OverchargePerHour = payload.OverchargePerHour

	if err := config.DB.Save(&rt).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room type")
		return
	}
	c.JSON(http.StatusOK, rt)
}

// DeleteRoomType does not guard against rooms still referencing the tier;
// their roomTypeID keeps pointing at the soft-deleted row. Accepted gap.
func DeleteRoomType(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.RoomType{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room type")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room type not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room type deleted"})
}
