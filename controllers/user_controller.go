package controllers

import (
	"errors"
	"net/http"
	"strings"

	"frontdesk-backend/config"
	"frontdesk-backend/models"
	"frontdesk-backend/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func GetUsers(c *gin.Context) {
	var users []models.User
	if err := config.DB.Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUsersDTO feeds the check-in staff picker: non-admin users reduced to
// id + full name.
func GetUsersDTO(c *gin.Context) {
	var users []models.User
	if err := config.DB.Where("role <> ?", models.RoleAdmin).Find(&users).Error; err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list users")
		return
	}

	dtos := make([]models.UserDTO, 0, len(users))
	for _, u := range users {
		dtos = append(dtos, models.UserDTO{UserID: u.ID, FullName: u.FullName})
	}
	c.JSON(http.StatusOK, dtos)
}

type userPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func hashPassword(raw string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CreateUser(c *gin.Context) {
	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}
	if strings.TrimSpace(payload.Password) == "" {
		utils.JSONError(c, http.StatusBadRequest, "password is required")
		return
	}

	hash, err := hashPassword(payload.Password)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
		return
	}

	role := payload.Role
	if role != models.RoleAdmin {
		role = models.RoleStaff // new accounts default to Staff
	}

	user := models.User{
		Username: strings.TrimSpace(payload.Username),
		Password: hash,
		FullName: payload.FullName,
		Email:    payload.Email,
		Role:     role,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "username already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to create user")
		return
	}
	c.JSON(http.StatusCreated, user)
}

func UpdateUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var payload userPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload: "+err.Error())
		return
	}

	var user models.User
	if err := config.DB.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.JSONError(c, http.StatusNotFound, "user not found")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to load user")
		return
	}

	user.Username = strings.TrimSpace(payload.Username)
	user.FullName = payload.FullName
	user.Email = payload.Email
	if payload.Role == models.RoleAdmin || payload.Role == models.RoleStaff {
		user.Role = payload.Role
	}
	if strings.TrimSpace(payload.Password) != "" {
		hash, err := hashPassword(payload.Password)
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, "failed to hash password")
			return
		}
		user.Password = hash
	}

	if err := config.DB.Save(&user).Error; err != nil {
		if isDuplicateKey(err) {
			utils.JSONError(c, http.StatusConflict, "username already exists")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update user")
		return
	}
	c.JSON(http.StatusOK, user)
}

func DeleteUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	result := config.DB.Delete(&models.User{}, id)
	if result.Error != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to delete user")
		return
	}
	if result.RowsAffected == 0 {
		utils.JSONError(c, http.StatusNotFound, "user not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "User deleted"})
}
