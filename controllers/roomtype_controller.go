package controllers

import (
	"net/http"
	"strings"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"

	"github.com/gin-gonic/gin"
)

func GetRoomTypes(c *gin.Context) {
	var roomTypes []models.RoomType
	if err := config.DB.Find(&roomTypes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, roomTypes)
}

func CreateRoomType(c *gin.Context) {
	var roomType models.RoomType
	if err := c.ShouldBindJSON(&roomType); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if strings.TrimSpace(roomType.TypeName) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "type_name is required"})
		return
	}

	if err := config.DB.Create(&roomType).Error; err != nil {
		if strings.Contains(err.Error(), "Duplicate entry") || strings.Contains(err.Error(), "UNIQUE constraint") {
			c.JSON(http.StatusConflict, gin.H{"error": "room type already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, roomType)
}

func DeleteRoomType(c *gin.Context) {
	id := c.Param("id")

	var count int64
	if err := config.DB.Model(&models.Room{}).Where("room_type_id = ?", id).Count(&count).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if count > 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "room type is still assigned to rooms"})
		return
	}

	config.DB.Delete(&models.RoomType{}, id)
	c.JSON(http.StatusOK, gin.H{"message": "room type deleted"})
}
