package response

import (
	"time"

	"room-stay-engine/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID           uuid.UUID  `json:"id"`
	Number       string     `json:"number"`
	Type         string     `json:"type"`
	Floor        string     `json:"floor"`
	Capacity     int        `json:"capacity"`
	Tariff       int64      `json:"tariff"`
	Amenities    []string   `json:"amenities"`
	Status       string     `json:"status"`
	ActiveStayID *uuid.UUID `json:"active_stay_id,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func FromRoomView(v *queries.RoomView) (*RoomResponse, error) {
	var out RoomResponse
	if err := copier.Copy(&out, v); err != nil {
		return nil, err
	}
	if out.Amenities == nil {
		out.Amenities = []string{}
	}
	return &out, nil
}

func FromRoomViews(vs []*queries.RoomView) ([]*RoomResponse, error) {
	out := make([]*RoomResponse, 0, len(vs))
	for _, v := range vs {
		r, err := FromRoomView(v)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
