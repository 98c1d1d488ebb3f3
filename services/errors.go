package services

import "errors"

// Sentinel errors returned by the service layer. Controllers translate them
// to the nearest HTTP status.
var (
	ErrRoomNotFound      = errors.New("room_not_found")
	ErrRoomNotAvailable  = errors.New("room_not_available")
	ErrRoomOccupied      = errors.New("room_occupied")
	ErrRoomNotInUse      = errors.New("room_not_in_use")
	ErrRoomTypeNotFound  = errors.New("room_type_not_found")
	ErrRoomTypeLocked    = errors.New("room_type_locked")
	ErrUserNotFound      = errors.New("user_not_found")
	ErrHistoryNotFound   = errors.New("history_not_found")
	ErrAlreadyCheckedOut = errors.New("already_checked_out")
	ErrServiceNotFound   = errors.New("service_not_found")
	ErrLineNotFound      = errors.New("room_service_not_found")
	ErrInvalidQuantity   = errors.New("invalid_quantity")
	ErrStatusConflict    = errors.New("status_conflict")
	ErrInvalidStatus     = errors.New("invalid_status")
)
