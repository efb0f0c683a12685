package room

import (
	"errors"
	"strings"
	"time"

	"room-stay-engine/internal/domain/calendar"

	"github.com/google/uuid"
)

var (
	ErrEmptyMaintenanceReason = errors.New("maintenance reason is required")
	ErrMaintenanceInactive    = errors.New("maintenance schedule is already cleared")
)

// MaintenanceSchedule blocks a room for a date range until cleared.
type MaintenanceSchedule struct {
	id        uuid.UUID
	roomID    uuid.UUID
	period    calendar.DateRange
	reason    string
	active    bool
	createdBy uuid.UUID
	createdAt time.Time
}

func NewMaintenanceSchedule(roomID uuid.UUID, period calendar.DateRange, reason string, createdBy uuid.UUID, now time.Time) (*MaintenanceSchedule, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, ErrEmptyMaintenanceReason
	}
	return &MaintenanceSchedule{
		id:        uuid.New(),
		roomID:    roomID,
		period:    period,
		reason:    reason,
		active:    true,
		createdBy: createdBy,
		createdAt: now,
	}, nil
}

func ReconstructMaintenanceSchedule(id, roomID uuid.UUID, period calendar.DateRange, reason string, active bool, createdBy uuid.UUID, createdAt time.Time) *MaintenanceSchedule {
	return &MaintenanceSchedule{
		id:        id,
		roomID:    roomID,
		period:    period,
		reason:    reason,
		active:    active,
		createdBy: createdBy,
		createdAt: createdAt,
	}
}

func (m *MaintenanceSchedule) Clear() error {
	if !m.active {
		return ErrMaintenanceInactive
	}
	m.active = false
	return nil
}

func (m *MaintenanceSchedule) ID() uuid.UUID              { return m.id }
func (m *MaintenanceSchedule) RoomID() uuid.UUID          { return m.roomID }
func (m *MaintenanceSchedule) Period() calendar.DateRange { return m.period }
func (m *MaintenanceSchedule) Reason() string             { return m.reason }
func (m *MaintenanceSchedule) IsActive() bool             { return m.active }
func (m *MaintenanceSchedule) CreatedBy() uuid.UUID       { return m.createdBy }
func (m *MaintenanceSchedule) CreatedAt() time.Time       { return m.createdAt }
