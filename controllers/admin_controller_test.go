package controllers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"hotel-reservation-backend/config"
	"hotel-reservation-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupAdminTestDB(t *testing.T) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Admin{}, &models.Role{}, &models.RoleMember{}))
	config.DB = db
}

func deleteAdminRequest(id string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Params = gin.Params{{Key: "id", Value: id}}
	DeleteAdmin(c)
	return w
}

func TestDeleteAdmin(t *testing.T) {
	setupAdminTestDB(t)

	admin := models.Admin{FullName: "Front Desk", Username: "front.desk", Password: "hash"}
	require.NoError(t, config.DB.Create(&admin).Error)
	require.NoError(t, config.DB.Create(&models.RoleMember{RoleID: 1, AdminID: admin.ID}).Error)

	w := deleteAdminRequest(fmt.Sprint(admin.ID))
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Admin
	err := config.DB.First(&got, admin.ID).Error
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var members int64
	require.NoError(t, config.DB.Model(&models.RoleMember{}).Where("admin_id = ?", admin.ID).Count(&members).Error)
	assert.Zero(t, members)
}

func TestDeleteAdminUnknownIDIsNotFound(t *testing.T) {
	setupAdminTestDB(t)

	w := deleteAdminRequest("999")
	assert.Equal(t, http.StatusNotFound, w.Code)
}
