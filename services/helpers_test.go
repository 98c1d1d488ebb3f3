package services

import (
	"fmt"
	"strings"
	"testing"
	"time"

	"frontdesk-backend/config"
	"frontdesk-backend/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema
// applied. The DSN is keyed by test name so parallel tests never share state.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared",
		strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, config.Migrate(db))
	return db
}

func seedRoomType(t *testing.T, db *gorm.DB) models.RoomType {
	t.Helper()
	rt := models.RoomType{
		TypeName:          "Hourly",
		BasePrice:         50000,
		HourThreshold:     3,
		OverchargePerHour: 20000,
	}
	require.NoError(t, db.Create(&rt).Error)
	return rt
}

func seedRoom(t *testing.T, db *gorm.DB, name, status string, roomTypeID *uint) models.Room {
	t.Helper()
	room := models.Room{
		RoomName:     name,
		BaseRoomType: "Single",
		Price:        100000,
		Status:       status,
		RoomTypeID:   roomTypeID,
	}
	require.NoError(t, db.Create(&room).Error)
	return room
}

func seedUser(t *testing.T, db *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Password: "not-a-real-hash",
		FullName: "Front Desk " + username,
		Role:     models.RoleStaff,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func seedService(t *testing.T, db *gorm.DB, name string, price float64) models.Service {
	t.Helper()
	svc := models.Service{
		ServiceName: name,
		Price:       price,
		ServiceType: models.ServiceTypeFood,
	}
	require.NoError(t, db.Create(&svc).Error)
	return svc
}

// checkIn opens a session starting at the given time on an Available room.
func checkIn(t *testing.T, svc *HistoryService, roomID, userID uint, start time.Time) models.History {
	t.Helper()
	history, err := svc.CheckIn(CheckInInput{
		RoomID:       roomID,
		UserID:       userID,
		NameCustomer: "Nguyen Van A",
		StartTime:    &start,
	})
	require.NoError(t, err)
	return history
}
