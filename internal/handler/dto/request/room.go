package request

import (
	"strings"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/usecase/commands"
)

type CreateRoomRequest struct {
	Number    string   `json:"number" binding:"required"`
	Type      string   `json:"type" binding:"required"`
	Floor     string   `json:"floor"`
	Capacity  int      `json:"capacity" binding:"required,min=1"`
	Tariff    int64    `json:"tariff" binding:"min=0"`
	Amenities []string `json:"amenities"`
}

func (r CreateRoomRequest) ToInput() commands.CreateRoomInput {
	amenities := make([]string, 0, len(r.Amenities))
	for _, a := range r.Amenities {
		if a = strings.TrimSpace(a); a != "" {
			amenities = append(amenities, a)
		}
	}
	return commands.CreateRoomInput{
		Number:    strings.TrimSpace(r.Number),
		Type:      strings.TrimSpace(r.Type),
		Floor:     strings.TrimSpace(r.Floor),
		Capacity:  r.Capacity,
		Tariff:    r.Tariff,
		Amenities: amenities,
	}
}

type ScheduleMaintenanceRequest struct {
	StartDate calendar.Date `json:"start_date"`
	EndDate   calendar.Date `json:"end_date"`
	Reason    string        `json:"reason" binding:"required"`
}

func (r ScheduleMaintenanceRequest) ToInput(ref room.Ref) commands.ScheduleMaintenanceInput {
	return commands.ScheduleMaintenanceInput{
		Room:      ref,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Reason:    strings.TrimSpace(r.Reason),
	}
}
