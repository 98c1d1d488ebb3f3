package services

import (
	"fmt"
	"sort"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// StatsService computes the aggregates the dashboard's statistics page
// displays. All figures are over checked-out sessions; open sessions have no
// authoritative total yet.
type StatsService struct {
	DB *gorm.DB
}

func NewStatsService(db *gorm.DB) *StatsService {
	return &StatsService{DB: db}
}

type RoomRevenue struct {
	RoomID   uint    `json:"roomID"`
	RoomName string  `json:"roomName"`
	Revenue  float64 `json:"revenue"`
}

type ServiceSales struct {
	ServiceID    uint   `json:"serviceID"`
	ServiceName  string `json:"serviceName"`
	QuantitySold int    `json:"quantitySold"`
}

type MonthlyRevenue struct {
	Month   string  `json:"month"` // YYYY-MM
	Revenue float64 `json:"revenue"`
}

type Statistics struct {
	TotalRooms     int64            `json:"totalRooms"`
	TotalSessions  int64            `json:"totalSessions"`
	TotalRevenue   float64          `json:"totalRevenue"`
	RoomRevenue    []RoomRevenue    `json:"roomRevenue"`
	ServiceSales   []ServiceSales   `json:"serviceSales"`
	MonthlyRevenue []MonthlyRevenue `json:"monthlyRevenue"`
}

func (s *StatsService) Collect() (Statistics, error) {
	var stats Statistics

	if err := s.DB.Model(&models.Room{}).Count(&stats.TotalRooms).Error; err != nil {
		return Statistics{}, fmt.Errorf("failed to count rooms: %w", err)
	}
	if err := s.DB.Model(&models.History{}).Count(&stats.TotalSessions).Error; err != nil {
		return Statistics{}, fmt.Errorf("failed to count histories: %w", err)
	}

	var histories []models.History
	if err := s.DB.Preload("Room").Preload("RoomServices").
		Where("is_check_out = ?", true).
		Find(&histories).Error; err != nil {
		return Statistics{}, fmt.Errorf("failed to load histories: %w", err)
	}

	roomRevenue := map[uint]*RoomRevenue{}
	soldByService := map[uint]int{}
	monthly := map[string]float64{}

	for _, h := range histories {
		stats.TotalRevenue += h.TotalPrice

		if h.Room != nil {
			rr, ok := roomRevenue[h.RoomID]
			if !ok {
				rr = &RoomRevenue{RoomID: h.RoomID, RoomName: h.Room.RoomName}
				roomRevenue[h.RoomID] = rr
			}
			rr.Revenue += h.TotalPrice
		}

		for _, line := range h.RoomServices {
			soldByService[line.ServiceID] += line.Quantity
		}

		monthly[h.StartTime.Format("2006-01")] += h.TotalPrice
	}

	for _, rr := range roomRevenue {
		stats.RoomRevenue = append(stats.RoomRevenue, *rr)
	}
	sort.Slice(stats.RoomRevenue, func(i, j int) bool {
		return stats.RoomRevenue[i].Revenue > stats.RoomRevenue[j].Revenue
	})

	var catalog []models.Service
	if err := s.DB.Find(&catalog).Error; err != nil {
		return Statistics{}, fmt.Errorf("failed to load services: %w", err)
	}
	for _, svc := range catalog {
		stats.ServiceSales = append(stats.ServiceSales, ServiceSales{
			ServiceID:    svc.ID,
			ServiceName:  svc.ServiceName,
			QuantitySold: soldByService[svc.ID],
		})
	}

	months := make([]string, 0, len(monthly))
	for m := range monthly {
		months = append(months, m)
	}
	sort.Strings(months)
	for _, m := range months {
		stats.MonthlyRevenue = append(stats.MonthlyRevenue, MonthlyRevenue{Month: m, Revenue: monthly[m]})
	}

	return stats, nil
}
