//go:build unit || e2e

package builder

import (
	"time"

	"room-stay-engine/internal/domain/money"
	"room-stay-engine/internal/domain/room"

	"github.com/google/uuid"
)

type RoomBuilder struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Number     string
	Type       string
	Floor      string
	Capacity   int
	Tariff     int64
	Amenities  []string
	Status     room.Status
	StayID     *uuid.UUID
	CreatedAt  time.Time
}

func NewRoomBuilder() *RoomBuilder {
	return &RoomBuilder{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		Number:     "101",
		Type:       "deluxe",
		Floor:      "1",
		Capacity:   2,
		Tariff:     2000,
		Amenities:  []string{"wifi", "ac"},
		Status:     room.StatusAvailable,
		CreatedAt:  time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (r *RoomBuilder) With(mutate func(*RoomBuilder)) *RoomBuilder {
	mutate(r)
	return r
}

// Build methods
func (r *RoomBuilder) BuildSpec() room.Spec {
	return room.Spec{
		PropertyID: r.PropertyID,
		Number:     r.Number,
		Type:       r.Type,
		Floor:      r.Floor,
		Capacity:   r.Capacity,
		Tariff:     r.Tariff,
		Amenities:  r.Amenities,
	}
}

func (r *RoomBuilder) BuildNew() (*room.Room, error) {
	return room.NewRoom(r.BuildSpec(), r.CreatedAt)
}

// BuildDomain skips validation and keeps the configured status.
func (r *RoomBuilder) BuildDomain() *room.Room {
	return room.ReconstructRoom(
		r.ID, r.PropertyID,
		r.Number, r.Type, r.Floor,
		r.Capacity,
		money.New(r.Tariff),
		r.Amenities,
		r.Status,
		r.StayID,
		r.CreatedAt, r.CreatedAt,
	)
}

// Fluent builder methods
func (r *RoomBuilder) WithID(id uuid.UUID) *RoomBuilder {
	r.ID = id
	return r
}

func (r *RoomBuilder) WithPropertyID(id uuid.UUID) *RoomBuilder {
	r.PropertyID = id
	return r
}

func (r *RoomBuilder) WithNumber(number string) *RoomBuilder {
	r.Number = number
	return r
}

func (r *RoomBuilder) WithTariff(tariff int64) *RoomBuilder {
	r.Tariff = tariff
	return r
}

func (r *RoomBuilder) WithStatus(status room.Status) *RoomBuilder {
	r.Status = status
	return r
}

func (r *RoomBuilder) OccupiedBy(stayID uuid.UUID) *RoomBuilder {
	r.Status = room.StatusOccupied
	r.StayID = &stayID
	return r
}
