package services

import (
	"errors"
	"fmt"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// RoomServiceService maintains the room-service ledger. Adds are merge
// writes, not appends: a repeated (history, service) pair accumulates
// quantity on the existing line instead of creating a duplicate row.
type RoomServiceService struct {
	DB *gorm.DB
}

func NewRoomServiceService(db *gorm.DB) *RoomServiceService {
	return &RoomServiceService{DB: db}
}

type ServiceQuantity struct {
	ServiceID uint `json:"serviceID" binding:"required"`
	Quantity  int  `json:"quantity"`
}

type AddServicesInput struct {
	HistoryID uint              `json:"historyID" binding:"required"`
	RoomID    uint              `json:"roomID" binding:"required"`
	Services  []ServiceQuantity `json:"services" binding:"required"`
}

// normalizeQuantity clamps a requested amount to the minimum of one unit.
func normalizeQuantity(q int) int {
	if q < 1 {
		return 1
	}
	return q
}

// AddServices applies a batch of (serviceID, quantity) requests to an open
// session and returns the refreshed History. The session must belong to the
// given room, must not be checked out, and the room must be In Use.
func (s *RoomServiceService) AddServices(in AddServicesInput) (models.History, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var history models.History
		if err := tx.Where("id = ? AND room_id = ?", in.HistoryID, in.RoomID).
			First(&history).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHistoryNotFound
			}
			return err
		}
		if !history.Open() {
			return ErrAlreadyCheckedOut
		}

		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			return err
		}
		if room.Status != models.RoomStatusInUse {
			return ErrRoomNotInUse
		}

		for _, item := range in.Services {
			qty := normalizeQuantity(item.Quantity)

			var line models.RoomService
			err := tx.Where("history_id = ? AND service_id = ?", in.HistoryID, item.ServiceID).
				First(&line).Error
			switch {
			case err == nil:
				if err := tx.Model(&line).
					Update("quantity", line.Quantity+qty).Error; err != nil {
					return err
				}
			case errors.Is(err, gorm.ErrRecordNotFound):
				var svc models.Service
				if err := tx.First(&svc, item.ServiceID).Error; err != nil {
					if errors.Is(err, gorm.ErrRecordNotFound) {
						return ErrServiceNotFound
					}
					return err
				}
				line = models.RoomService{
					HistoryID: in.HistoryID,
					RoomID:    in.RoomID,
					ServiceID: item.ServiceID,
					Quantity:  qty,
				}
				if err := tx.Create(&line).Error; err != nil {
					return err
				}
			default:
				return err
			}
		}
		return nil
	})
	if err != nil {
		return models.History{}, err
	}

	var history models.History
	if err := historyPreloads(s.DB).First(&history, in.HistoryID).Error; err != nil {
		return models.History{}, fmt.Errorf("failed to reload history: %w", err)
	}
	return history, nil
}

// ListForHistory returns the ledger lines of one session.
func (s *RoomServiceService) ListForHistory(historyID uint) ([]models.RoomService, error) {
	var lines []models.RoomService
	if err := s.DB.Preload("Service").
		Where("history_id = ?", historyID).
		Find(&lines).Error; err != nil {
		return nil, fmt.Errorf("failed to list room services: %w", err)
	}
	return lines, nil
}

// SetQuantity overwrites a line's quantity. Unlike AddServices this is not a
// merge; quantities below one are rejected rather than clamped.
func (s *RoomServiceService) SetQuantity(lineID uint, quantity int) (models.RoomService, error) {
	if quantity < 1 {
		return models.RoomService{}, ErrInvalidQuantity
	}

	var line models.RoomService
	if err := s.DB.First(&line, lineID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RoomService{}, ErrLineNotFound
		}
		return models.RoomService{}, fmt.Errorf("failed to load room service: %w", err)
	}

	var history models.History
	if err := s.DB.First(&history, line.HistoryID).Error; err != nil {
		return models.RoomService{}, fmt.Errorf("failed to load history: %w", err)
	}
	if !history.Open() {
		return models.RoomService{}, ErrAlreadyCheckedOut
	}

	if err := s.DB.Model(&line).Update("quantity", quantity).Error; err != nil {
		return models.RoomService{}, fmt.Errorf("failed to update quantity: %w", err)
	}

	if err := s.DB.Preload("Service").First(&line, lineID).Error; err != nil {
		return models.RoomService{}, fmt.Errorf("failed to reload room service: %w", err)
	}
	return line, nil
}

// DeleteLine removes exactly one ledger line by its own id.
func (s *RoomServiceService) DeleteLine(lineID uint) error {
	res := s.DB.Delete(&models.RoomService{}, lineID)
	if res.Error != nil {
		return fmt.Errorf("failed to delete room service: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrLineNotFound
	}
	return nil
}

// DeleteByRoomAndService is the legacy keying kept for callers that do not
// know the line id: it removes the (room, service) pair's line.
func (s *RoomServiceService) DeleteByRoomAndService(roomID, serviceID uint) error {
	var line models.RoomService
	if err := s.DB.Where("room_id = ? AND service_id = ?", roomID, serviceID).
		First(&line).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrLineNotFound
		}
		return fmt.Errorf("failed to load room service: %w", err)
	}
	return s.DB.Delete(&line).Error
}
