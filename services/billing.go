package services

import "frontdesk-backend/models"

// PriceBreakdown is the composition of a bill, persisted as JSON on the
// History row at check-out.
type PriceBreakdown struct {
	RoomPrice     float64 `json:"roomPrice"`
	BasePrice     float64 `json:"basePrice"`
	ServicesTotal float64 `json:"servicesTotal"`
	DurationHours float64 `json:"durationHours"`
	Surcharge     float64 `json:"surcharge"`
	Total         float64 `json:"total"`
}

// CalculateTotalPrice derives the displayable total for a session. It is a
// pure function of its inputs: room flat price, plus the pricing tier's base
// price, plus consumed services, plus the overstay surcharge. Returns 0 when
// there is no session and never returns a negative amount.
//
// Tier values come from the History's snapshot when one was captured (so
// historical bills stay frozen against rate edits); otherwise from the room's
// currently assigned RoomType.
func CalculateTotalPrice(history *models.History, room models.Room, catalog []models.Service) float64 {
	return CalculatePriceBreakdown(history, room, catalog).Total
}

// CalculatePriceBreakdown is CalculateTotalPrice with the intermediate terms
// exposed.
func CalculatePriceBreakdown(history *models.History, room models.Room, catalog []models.Service) PriceBreakdown {
	if history == nil {
		return PriceBreakdown{}
	}

	b := PriceBreakdown{RoomPrice: room.Price}

	if history.BasePrice != nil {
		b.BasePrice = *history.BasePrice
	} else if room.RoomType != nil {
		b.BasePrice = room.RoomType.BasePrice
	}

	for _, line := range history.RoomServices {
		price, ok := resolveServicePrice(line, catalog)
		if !ok {
			continue
		}
		b.ServicesTotal += price * float64(line.Quantity)
	}

	b.DurationHours, b.Surcharge = overstaySurcharge(history, room)

	b.Total = b.RoomPrice + b.BasePrice + b.ServicesTotal + b.Surcharge
	if b.Total < 0 {
		b.Total = 0
	}
	return b
}

// overstaySurcharge returns the stay duration in fractional hours and the
// surcharge owed beyond the tier's included hours. The over-threshold hours
// stay fractional; they are not rounded up before multiplying.
func overstaySurcharge(history *models.History, room models.Room) (durationHours, surcharge float64) {
	if history.StartTime.IsZero() || history.EndTime == nil {
		return 0, 0
	}

	threshold := 0
	rate := 0.0
	switch {
	case history.HourThreshold != nil && history.OverchargePerHour != nil:
		threshold = *history.HourThreshold
		rate = *history.OverchargePerHour
	case room.RoomType != nil:
		threshold = room.RoomType.HourThreshold
		rate = room.RoomType.OverchargePerHour
	}

	durationHours = history.EndTime.Sub(history.StartTime).Hours()
	if threshold <= 0 || rate <= 0 || durationHours <= float64(threshold) {
		return durationHours, 0
	}
	return durationHours, (durationHours - float64(threshold)) * rate
}

func resolveServicePrice(line models.RoomService, catalog []models.Service) (float64, bool) {
	if line.Service != nil {
		return line.Service.Price, true
	}
	for _, svc := range catalog {
		if svc.ID == line.ServiceID {
			return svc.Price, true
		}
	}
	return 0, false
}
