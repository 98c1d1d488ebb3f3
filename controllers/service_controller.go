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

func GetServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Find(&services).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

func GetServiceByID(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service")
		return
	}
	c.JSON(http.StatusOK, service)
}

type servicePayload struct {
	ServiceName string  `json:"serviceName" binding:"required"`
	Price       float64 `json:"price"`
	ServiceType string  `json:"serviceType"`
}

func (p *servicePayload) validate(c *gin.Context) bool {
	if p.ServiceType != "" && !models.ValidServiceType(p.ServiceType) {
		utils.JSONError(c, http.StatusBadRequest, "invalid serviceType")
		return false
	}
	return true
}

func CreateService(c *gin.Context) {
	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if !payload.validate(c) {
		return
	}

	service := models.Service{
		ServiceName: payload.ServiceName,
		Price:       payload.Price,
		ServiceType: payload.ServiceType,
	}
	if err := config.DB.Create(&service).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to create service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

func UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload servicePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if !payload.validate(c) {
		return
	}

	var service models.Service
	if err := config.DB.First(&service, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "service not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load service")
		return
	}

	service.ServiceName = payload.ServiceName
	service.Price = payload.Price
	service.ServiceType = payload.ServiceType

	if err := config.DB.Save(&service).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to update service")
		return
	}
	c.JSON(http.StatusOK, service)
}

func DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.Service{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete service")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "service not found")
		return
	}
	c.Status(http.StatusNoContent)
}
