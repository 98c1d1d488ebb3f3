package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"frontdesk-backend/models"

	"gorm.io/gorm"
)

// HistoryService owns the session (occupancy) state machine:
//
//	Available -> (check-in) -> In Use -> (check-out) -> Being Cleaned
//	Being Cleaned -> (cleaning done, status edit) -> Available
//
// Room status flips are conditional updates inside a transaction, so two
// simultaneous check-ins against the same "Available" room cannot both win.
type HistoryService struct {
	DB *gorm.DB
}

func NewHistoryService(db *gorm.DB) *HistoryService {
	return &HistoryService{DB: db}
}

type CheckInInput struct {
	RoomID              uint       `json:"roomID" binding:"required"`
	UserID              uint       `json:"userID" binding:"required"`
	NameCustomer        string     `json:"nameCustomer" binding:"required"`
	NumberPhoneCustomer string     `json:"numberPhoneCustomer"`
	IDCustomer          string     `json:"idCustomer"`
	StartTime           *time.Time `json:"startTime"`
}

type UpdateHistoryInput struct {
	NameCustomer        *string    `json:"nameCustomer"`
	NumberPhoneCustomer *string    `json:"numberPhoneCustomer"`
	IDCustomer          *string    `json:"idCustomer"`
	StartTime           *time.Time `json:"startTime"`
	IsCheckOut          bool       `json:"isCheckOut"`
	EndTime             *time.Time `json:"endTime"`
}

func historyPreloads(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Room").
		Preload("Room.RoomType").
		Preload("User").
		Preload("RoomServices").
		Preload("RoomServices.Service")
}

func (s *HistoryService) List() ([]models.History, error) {
	var histories []models.History
	if err := historyPreloads(s.DB).Order("start_time DESC").Find(&histories).Error; err != nil {
		return nil, fmt.Errorf("failed to list histories: %w", err)
	}
	return histories, nil
}

func (s *HistoryService) Get(id uint) (models.History, error) {
	var history models.History
	if err := historyPreloads(s.DB).First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.History{}, ErrHistoryNotFound
		}
		return models.History{}, fmt.Errorf("failed to load history: %w", err)
	}
	return history, nil
}

func (s *HistoryService) ListByRoom(roomID uint) ([]models.History, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}

	var histories []models.History
	if err := historyPreloads(s.DB).
		Where("room_id = ?", roomID).
		Order("start_time DESC").
		Find(&histories).Error; err != nil {
		return nil, fmt.Errorf("failed to list room histories: %w", err)
	}
	return histories, nil
}

// CheckIn opens a session on an Available room and flips it to In Use. The
// occupancy lock (at most one open History per room) is enforced here, and
// the status flip only succeeds if the room is still Available at commit.
func (s *HistoryService) CheckIn(in CheckInInput) (models.History, error) {
	var created models.History

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.First(&room, in.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != models.RoomStatusAvailable {
			return ErrRoomNotAvailable
		}

		var user models.User
		if err := tx.First(&user, in.UserID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}

		var open int64
		if err := tx.Model(&models.History{}).
			Where("room_id = ? AND end_time IS NULL", in.RoomID).
			Count(&open).Error; err != nil {
			return err
		}
		if open > 0 {
			return ErrRoomOccupied
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", in.RoomID, models.RoomStatusAvailable).
			Update("status", models.RoomStatusInUse)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrRoomNotAvailable
		}

		start := time.Now()
		if in.StartTime != nil {
			start = *in.StartTime
		}

		created = models.History{
			RoomID:              in.RoomID,
			UserID:              in.UserID,
			NameCustomer:        in.NameCustomer,
			NumberPhoneCustomer: in.NumberPhoneCustomer,
			IDCustomer:          in.IDCustomer,
			StartTime:           start,
			IsCheckOut:          false,
		}
		return tx.Create(&created).Error
	})
	if err != nil {
		return models.History{}, err
	}

	return s.Get(created.ID)
}

// CheckOut closes an open session: stamps the end time, snapshots the room's
// pricing tier onto the History, recomputes and stores the total, and flips
// the room to Being Cleaned. A second check-out of the same History is
// rejected.
func (s *HistoryService) CheckOut(id uint, at *time.Time) (models.History, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var history models.History
		if err := historyPreloads(tx).First(&history, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHistoryNotFound
			}
			return err
		}
		if !history.Open() {
			return ErrAlreadyCheckedOut
		}

		var room models.Room
		if err := tx.Preload("RoomType").First(&room, history.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.Status != models.RoomStatusInUse {
			return ErrRoomNotInUse
		}

		end := time.Now()
		if at != nil {
			end = *at
		}
		history.EndTime = &end
		history.IsCheckOut = true

		if room.RoomType != nil {
			rt := room.RoomType
			history.TypeName = &rt.TypeName
			history.HourThreshold = &rt.HourThreshold
			history.OverchargePerHour = &rt.OverchargePerHour
			history.BasePrice = &rt.BasePrice
		}

		breakdown := CalculatePriceBreakdown(&history, room, nil)
		history.TotalPrice = breakdown.Total
		raw, err := json.Marshal(breakdown)
		if err != nil {
			return err
		}
		history.PriceBreakdown = raw

		if err := tx.Model(&models.History{ID: history.ID}).Updates(map[string]interface{}{
			"end_time":            history.EndTime,
			"is_check_out":        true,
			"type_name":           history.TypeName,
			"hour_threshold":      history.HourThreshold,
			"overcharge_per_hour": history.OverchargePerHour,
			"base_price":          history.BasePrice,
			"total_price":         history.TotalPrice,
			"price_breakdown":     history.PriceBreakdown,
		}).Error; err != nil {
			return err
		}

		res := tx.Model(&models.Room{}).
			Where("id = ? AND status = ?", room.ID, models.RoomStatusInUse).
			Update("status", models.RoomStatusBeingCleaned)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrStatusConflict
		}
		return nil
	})
	if err != nil {
		return models.History{}, err
	}

	return s.Get(id)
}

// Update edits guest identity fields on an open session. Check-out goes
// through CheckOut, never through here.
func (s *HistoryService) Update(id uint, in UpdateHistoryInput) (models.History, error) {
	var history models.History
	if err := s.DB.First(&history, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.History{}, ErrHistoryNotFound
		}
		return models.History{}, fmt.Errorf("failed to load history: %w", err)
	}
	if !history.Open() {
		return models.History{}, ErrAlreadyCheckedOut
	}

	updates := map[string]interface{}{}
	if in.NameCustomer != nil {
		updates["name_customer"] = *in.NameCustomer
	}
	if in.NumberPhoneCustomer != nil {
		updates["number_phone_customer"] = *in.NumberPhoneCustomer
	}
	if in.IDCustomer != nil {
		updates["id_customer"] = *in.IDCustomer
	}
	if in.StartTime != nil {
		updates["start_time"] = *in.StartTime
	}

	if len(updates) > 0 {
		if err := s.DB.Model(&models.History{ID: id}).Updates(updates).Error; err != nil {
			return models.History{}, fmt.Errorf("failed to update history: %w", err)
		}
	}
	return s.Get(id)
}

// Delete removes a History and its ledger lines. Unconditional and admin
// only; deliberately does not touch the room's status.
func (s *HistoryService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		var history models.History
		if err := tx.First(&history, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrHistoryNotFound
			}
			return err
		}
		if err := tx.Where("history_id = ?", id).Delete(&models.RoomService{}).Error; err != nil {
			return err
		}
		return tx.Delete(&history).Error
	})
}

// UpdateRoomStatus is the direct status edit: it finishes cleaning and serves
// the administrative side-states. A room still holding an open session cannot
// be forced back to Available.
func (s *HistoryService) UpdateRoomStatus(roomID uint, status string) (models.Room, error) {
	if !models.ValidRoomStatus(status) {
		return models.Room{}, ErrInvalidStatus
	}

	var room models.Room
	if err := s.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to load room: %w", err)
	}

	if status == models.RoomStatusAvailable {
		var open int64
		if err := s.DB.Model(&models.History{}).
			Where("room_id = ? AND end_time IS NULL", roomID).
			Count(&open).Error; err != nil {
			return models.Room{}, err
		}
		if open > 0 {
			return models.Room{}, ErrRoomOccupied
		}
	}

	if err := s.DB.Model(&room).Update("status", status).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to update room status: %w", err)
	}
	room.Status = status
	return room, nil
}

// AssignRoomType reassigns the pricing tier. Permitted only while the room is
// Available or In Use; a nil roomTypeID clears the assignment.
func (s *HistoryService) AssignRoomType(roomID uint, roomTypeID *uint) (models.Room, error) {
	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Room{}, ErrRoomNotFound
		}
		return models.Room{}, fmt.Errorf("failed to load room: %w", err)
	}

	if room.Status != models.RoomStatusAvailable && room.Status != models.RoomStatusInUse {
		return models.Room{}, ErrRoomTypeLocked
	}

	if roomTypeID != nil {
		var rt models.RoomType
		if err := s.DB.First(&rt, *roomTypeID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return models.Room{}, ErrRoomTypeNotFound
			}
			return models.Room{}, fmt.Errorf("failed to load room type: %w", err)
		}
	}

	if err := s.DB.Model(&room).Update("room_type_id", roomTypeID).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to assign room type: %w", err)
	}

	if err := s.DB.Preload("RoomType").First(&room, roomID).Error; err != nil {
		return models.Room{}, fmt.Errorf("failed to reload room: %w", err)
	}
	return room, nil
}
