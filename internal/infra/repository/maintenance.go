package repository

//go:generate mockgen -source=maintenance.go -destination=../../../tests/mock/repository/maintenance.go -package=repositorymock

import (
	"context"

	"room-stay-engine/internal/domain/calendar"
	"room-stay-engine/internal/domain/room"
	"room-stay-engine/internal/infra"
	"room-stay-engine/internal/infra/pgq"
	"room-stay-engine/internal/infra/repository/converter"
	"room-stay-engine/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type MaintenanceWriteQueries interface {
	CreateMaintenance(ctx context.Context, db pgq.DBTX, arg pgq.CreateMaintenanceParams) error
	GetMaintenance(ctx context.Context, db pgq.DBTX, id uuid.UUID) (pgq.MaintenanceSchedule, error)
	DeactivateMaintenance(ctx context.Context, db pgq.DBTX, id uuid.UUID) (int64, error)
	ListActiveMaintenanceByRoom(ctx context.Context, db pgq.DBTX, roomID uuid.UUID, since pgtype.Date) ([]pgq.MaintenanceSchedule, error)
}

type MaintenanceRepository struct {
	queries MaintenanceWriteQueries
	db      pgq.DBTX
}

func NewMaintenanceRepository(queries MaintenanceWriteQueries, db pgq.DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{
		queries: queries,
		db:      db,
	}
}

func (r *MaintenanceRepository) Create(ctx context.Context, tx pgq.DBTX, m *room.MaintenanceSchedule) error {
	if err := r.queries.CreateMaintenance(ctx, tx, converter.MaintenanceToInfra(m)); err != nil {
		return infra.WrapRepoErr("failed to create maintenance schedule", err)
	}
	return nil
}

func (r *MaintenanceRepository) Get(ctx context.Context, tx pgq.DBTX, id uuid.UUID) (*room.MaintenanceSchedule, error) {
	row, err := r.queries.GetMaintenance(ctx, tx, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("maintenance schedule not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get maintenance schedule", err)
	}
	return converter.MaintenanceFromInfra(row), nil
}

func (r *MaintenanceRepository) Deactivate(ctx context.Context, tx pgq.DBTX, id uuid.UUID) error {
	n, err := r.queries.DeactivateMaintenance(ctx, tx, id)
	if err != nil {
		return infra.WrapRepoErr("failed to deactivate maintenance schedule", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("maintenance schedule not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *MaintenanceRepository) ListActiveByRoom(ctx context.Context, tx pgq.DBTX, roomID uuid.UUID, since calendar.Date) ([]*room.MaintenanceSchedule, error) {
	rows, err := r.queries.ListActiveMaintenanceByRoom(ctx, tx, roomID, converter.DateToInfra(since))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance of room", err)
	}
	return converter.MaintenanceListFromInfra(rows), nil
}
