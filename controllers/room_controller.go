package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	mysqldriver "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

func isDuplicateKey(err error) bool {
	var mysqlErr *mysqldriver.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	// sqlite used by the test suite
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// GetRooms lists all rooms with their pricing tier preloaded.
func GetRooms(c *gin.Context) {
	var rooms []models.Room
	if err := config.DB.Preload("RoomType").Find(&rooms).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list rooms")
		return
	}
	c.JSON(http.StatusOK, rooms)
}

func GetRoomByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var room models.Room
	if err := config.DB.Preload("RoomType").First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}
	c.JSON(http.StatusOK, room)
}

type roomPayload struct {
	RoomName     string  `json:"roomName" binding:"required"`
	BaseRoomType string  `json:"baseRoomType"`
	Price        float64 `json:"price"`
	Status       string  `json:"status"`
	Description  string  `json:"description"`
	RoomTypeID   *uint   `json:"roomTypeID"`
}

func (p *roomPayload) validateRoomType(c *gin.Context) bool {
	if p.RoomTypeID == nil {
		return true
	}
	var rt models.RoomType
	if err := config.DB.First(&rt, *p.RoomTypeID).Error; err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid roomTypeID")
		return false
	}
	return true
}

func CreateRoom(c *gin.Context) {
	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	payload.RoomName = strings.TrimSpace(payload.RoomName)
	if payload.RoomName == "" {
		utils.JSONError(c, http.StatusBadRequest, "roomName is required")
		return
	}
	if !payload.validateRoomType(c) {
		return
	}

	// A zero RoomTypeID from the form means "no tier".
	if payload.RoomTypeID != nil && *payload.RoomTypeID == 0 {
		payload.RoomTypeID = nil
	}

	room := models.Room{
		RoomName:     payload.RoomName,
		BaseRoomType: payload.BaseRoomType,
		Price:        payload.Price,
		Status:       models.RoomStatusAvailable,
		Description:  payload.Description,
		RoomTypeID:   payload.RoomTypeID,
	}

	if err := config.DB.Create(&room).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "room name already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create room")
		return
	}

	config.DB.Preload("RoomType").First(&room, room.ID)
	c.JSON(http.StatusCreated, room)
}

// UpdateRoom is a full-field replace of the catalog attributes.
func UpdateRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload roomPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if payload.Status != "" && !models.ValidRoomStatus(payload.Status) {
		utils.JSONError(c, http.StatusBadRequest, "invalid status")
		return
	}
	if !payload.validateRoomType(c) {
		return
	}

	var room models.Room
	if err := config.DB.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "room not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load room")
		return
	}

	room.RoomName = strings.TrimSpace(payload.RoomName)
	room.BaseRoomType = payload.BaseRoomType
	room.Price = payload.Price
	if payload.Status != "" {
		room.Status = payload.Status
	}
	room.Description = payload.Description
	room.RoomTypeID = payload.RoomTypeID

	if err := config.DB.Save(&room).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "room name already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update room")
		return
	}

	config.DB.Preload("RoomType").First(&room, room.ID)
	c.JSON(http.StatusOK, room)
}

func DeleteRoom(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Room{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete room")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "room not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Room deleted successfully"})
}
