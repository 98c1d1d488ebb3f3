package services

import (
	"testing"
	"time"

	"frontdesk-backend/models"

	"github.com/stretchr/testify/assert"
)

func billingFixture(stayHours time.Duration) (*models.History, models.Room, []models.Service) {
	start := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	end := start.Add(stayHours)

	rtID := uint(1)
	room := models.Room{
		ID:         7,
		RoomName:   "101",
		Price:      100000,
		RoomTypeID: &rtID,
		RoomType: &models.RoomType{
			ID:                rtID,
			TypeName:          "Hourly",
			BasePrice:         50000,
			HourThreshold:     3,
			OverchargePerHour: 20000,
		},
	}

	history := &models.History{
		ID:        11,
		RoomID:    room.ID,
		StartTime: start,
		EndTime:   &end,
		RoomServices: []models.RoomService{
			{
				ID:        1,
				HistoryID: 11,
				RoomID:    room.ID,
				ServiceID: 3,
				Quantity:  2,
				Service:   &models.Service{ID: 3, ServiceName: "Laundry", Price: 30000},
			},
		},
	}
	return history, room, nil
}

func TestCalculateTotalPriceWithOverstay(t *testing.T) {
	history, room, catalog := billingFixture(5 * time.Hour)

	// 100000 room + 50000 base + 2x30000 services + (5-3)x20000 surcharge
	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(250000), total)
}

func TestCalculateTotalPriceUnderThreshold(t *testing.T) {
	history, room, catalog := billingFixture(2 * time.Hour)

	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(210000), total)
}

func TestCalculateTotalPriceFractionalOverstay(t *testing.T) {
	history, room, catalog := billingFixture(4*time.Hour + 30*time.Minute)

	// over-threshold hours are not rounded up: 1.5h x 20000
	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(240000), total)
}

func TestCalculateTotalPriceIsIdempotent(t *testing.T) {
	history, room, catalog := billingFixture(5 * time.Hour)

	first := CalculateTotalPrice(history, room, catalog)
	second := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, first, second)
}

func TestCalculateTotalPriceNilHistory(t *testing.T) {
	_, room, catalog := billingFixture(time.Hour)
	assert.Equal(t, float64(0), CalculateTotalPrice(nil, room, catalog))
}

func TestCalculateTotalPriceOpenSessionHasNoSurcharge(t *testing.T) {
	history, room, catalog := billingFixture(10 * time.Hour)
	history.EndTime = nil

	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(210000), total)
}

func TestCalculateTotalPriceSnapshotBeatsLiveType(t *testing.T) {
	history, room, catalog := billingFixture(5 * time.Hour)

	// Snapshot captured at check-out: later tier edits must not change the bill.
	snapBase := float64(50000)
	snapThreshold := 3
	snapRate := float64(20000)
	history.BasePrice = &snapBase
	history.HourThreshold = &snapThreshold
	history.OverchargePerHour = &snapRate

	room.RoomType.BasePrice = 999999
	room.RoomType.OverchargePerHour = 999999
	room.RoomType.HourThreshold = 1

	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(250000), total)
}

func TestCalculateTotalPriceCatalogFallback(t *testing.T) {
	history, room, _ := billingFixture(2 * time.Hour)
	history.RoomServices[0].Service = nil

	catalog := []models.Service{
		{ID: 2, ServiceName: "Water", Price: 10000},
		{ID: 3, ServiceName: "Laundry", Price: 30000},
	}

	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(210000), total)
}

func TestCalculateTotalPriceUnassignedTier(t *testing.T) {
	history, room, catalog := billingFixture(5 * time.Hour)
	room.RoomType = nil
	room.RoomTypeID = nil

	// no base price, no surcharge rule: room + services only
	total := CalculateTotalPrice(history, room, catalog)
	assert.Equal(t, float64(160000), total)
}

func TestCalculatePriceBreakdownTerms(t *testing.T) {
	history, room, catalog := billingFixture(5 * time.Hour)

	b := CalculatePriceBreakdown(history, room, catalog)
	assert.Equal(t, float64(100000), b.RoomPrice)
	assert.Equal(t, float64(50000), b.BasePrice)
	assert.Equal(t, float64(60000), b.ServicesTotal)
	assert.Equal(t, float64(40000), b.Surcharge)
	assert.Equal(t, float64(5), b.DurationHours)
	assert.Equal(t, float64(250000), b.Total)
}
