package components

import (
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/readstore"
	"room-stay-engine/internal/infra/uow"
	"room-stay-engine/internal/usecase/queries"
	"room-stay-engine/internal/usecase/shared"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	baseOption,
	readstoreModule,
	unitOfWorkModule,
)

var baseOption = fx.Provide(
	NewSQLQueries,
	NewDBTX,
)

// Write repositories are not provided here; the unit of work builds them per transaction.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Room
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.RoomReadQueries)),
		),
		fx.Annotate(
			readstore.NewRoomReadStore,
			fx.As(new(queries.RoomReadStore)),
		),
		// Booking
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingReadQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingReadStore)),
		),
		// Stay
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.StayReadQueries)),
		),
		fx.Annotate(
			readstore.NewStayReadStore,
			fx.As(new(queries.StayReadStore)),
		),
		// Schedule
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ScheduleReadQueries)),
		),
		NewSnapshotFunc,
		fx.Annotate(
			readstore.NewScheduleReadStore,
			fx.As(new(queries.ScheduleReadStore)),
		),
		// Notification outbox, read by delivery tooling and e2e checks
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.NotificationReadQueries)),
		),
		readstore.NewNotificationReadStore,
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		uow.NewPostgresUoW,
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *pgq.Queries {
	return pgq.New()
}

func NewDBTX(pool *pgxpool.Pool) pgq.DBTX {
	return pool
}

// NewSnapshotFunc lets the schedule store read through the unit of work's read-only transaction.
func NewSnapshotFunc(u shared.UnitOfWork) readstore.SnapshotFunc {
	return u.WithinReadOnly
}
