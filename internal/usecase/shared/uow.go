package shared

//go:generate mockgen -source=uow.go -destination=../../../tests/mock/shared/uow.go -package=sharedmock

import (
	"context"
	"time"

	"room-stay-engine/internal/domain/booking"
	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/domain/stay"
	"room-stay-engine/internal/infra/pgq"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db pgq.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Rooms() RoomRepository
	Bookings() BookingRepository
	Stays() StayRepository
	Maintenance() MaintenanceRepository
	Orders() OrderRepository
	NightClaims() NightClaimRepository
	Idempotency() IdempotencyRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() pgq.DBTX
}

type CommandReads interface {
	RoomByRef(ctx context.Context, propertyID uuid.UUID, ref room.Ref) (*room.Room, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	IdempotencyByKey(ctx context.Context, key, userID uuid.UUID) (*IdempotencyRecord, error)
}

type RoomRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, r *room.Room) error
	// Lock reads the room with a row lock held until the transaction ends.
	Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*room.Room, error)
	SaveStatus(ctx context.Context, tx pgq.DBTX, r *room.Room) error
}

type BookingRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, b *booking.Booking) error
	Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*booking.Booking, error)
	SaveStatus(ctx context.Context, tx pgq.DBTX, b *booking.Booking) error
	// ListHoldingByRoom returns confirmed and checked-in bookings still running on or after since.
	ListHoldingByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, since calendar.Date) ([]*booking.Booking, error)
}

type StayRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error
	Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*stay.Stay, error)
	SaveLedger(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error
	SaveCheckout(ctx context.Context, tx pgq.DBTX, s *stay.Stay) error
	ListActiveByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID) ([]*stay.Stay, error)
}

type MaintenanceRepository interface {
	Create(ctx context.Context, tx pgq.DBTX, schedule *room.MaintenanceSchedule) error
	Get(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*room.MaintenanceSchedule, error)
	Deactivate(ctx context.Context, tx pgq.DBTX, id uuid.UUID) error
	ListActiveByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, since calendar.Date) ([]*room.MaintenanceSchedule, error)
}

type OrderRepository interface {
	Lock(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*OrderSnapshot, error)
	// MarkLinked reports false when the order is billed or linked to another stay.
	MarkLinked(ctx context.Context, tx pgq.DBTX, orderID, stayID uuid.UUID) (bool, error)
	MarkBilled(ctx context.Context, tx pgq.DBTX, stayID uuid.UUID, orderIDs []uuid.UUID) error
}

type NightClaimRepository interface {
	// Claim fails with *ClaimCollisionError naming every night another owner already holds.
	Claim(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, nights []calendar.Date, owner ClaimOwner) error
	Transfer(ctx context.Context, tx pgq.DBTX, from, to ClaimOwner) error
	Release(ctx context.Context, tx pgq.DBTX, owner ClaimOwner) error
}

type IdempotencyRepository interface {
	TryInsert(ctx context.Context, tx pgq.DBTX, key, userID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	ClaimExpired(ctx context.Context, tx pgq.DBTX, key, userID uuid.UUID, requestHash string, expiresAt, now time.Time) (bool, error)
	MarkCompleted(ctx context.Context, tx pgq.DBTX, key, userID, resultID uuid.UUID) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, tx pgq.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
