package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const maintenanceColumns = `m.id, m.room_id, m.start_date, m.end_date, m.reason, m.active, m.created_by, m.created_at`

func scanMaintenance(row pgx.Row) (MaintenanceSchedule, error) {
	var i MaintenanceSchedule
	err := row.Scan(
		&i.ID,
		&i.RoomID,
		&i.StartDate,
		&i.EndDate,
		&i.Reason,
		&i.Active,
		&i.CreatedBy,
		&i.CreatedAt,
	)
	return i, err
}

func collectMaintenance(rows pgx.Rows, err error) ([]MaintenanceSchedule, error) {
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []MaintenanceSchedule
	for rows.Next() {
		i, err := scanMaintenance(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}

const createMaintenance = `
INSERT INTO maintenance_schedules (id, room_id, start_date, end_date, reason, active, created_by, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
`

type CreateMaintenanceParams struct {
	ID        uuid.UUID
	RoomID    uuid.UUID
	StartDate pgtype.Date
	EndDate   pgtype.Date
	Reason    string
	Active    bool
	CreatedBy uuid.UUID
	CreatedAt pgtype.Timestamptz
}

func (q *Queries) CreateMaintenance(ctx context.Context, db DBTX, arg CreateMaintenanceParams) error {
	_, err := db.Exec(ctx, createMaintenance,
		arg.ID,
		arg.RoomID,
		arg.StartDate,
		arg.EndDate,
		arg.Reason,
		arg.Active,
		arg.CreatedBy,
		arg.CreatedAt,
	)
	return err
}

const getMaintenance = `SELECT ` + maintenanceColumns + ` FROM maintenance_schedules m WHERE m.id = $1`

func (q *Queries) GetMaintenance(ctx context.Context, db DBTX, id uuid.UUID) (MaintenanceSchedule, error) {
	return scanMaintenance(db.QueryRow(ctx, getMaintenance, id))
}

const deactivateMaintenance = `UPDATE maintenance_schedules SET active = FALSE WHERE id = $1 AND active`

func (q *Queries) DeactivateMaintenance(ctx context.Context, db DBTX, id uuid.UUID) (int64, error) {
	tag, err := db.Exec(ctx, deactivateMaintenance, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

// Schedules that ended before since can no longer matter.
const listActiveMaintenanceByRoom = `
SELECT ` + maintenanceColumns + `
FROM maintenance_schedules m
WHERE m.room_id = $1 AND m.active AND m.end_date >= $2
ORDER BY m.start_date
`

func (q *Queries) ListActiveMaintenanceByRoom(ctx context.Context, db DBTX, roomID uuid.UUID, since pgtype.Date) ([]MaintenanceSchedule, error) {
	return collectMaintenance(db.Query(ctx, listActiveMaintenanceByRoom, roomID, since))
}

const listActiveMaintenanceByProperty = `
SELECT ` + maintenanceColumns + `
FROM maintenance_schedules m
JOIN rooms r ON r.id = m.room_id
WHERE r.property_id = $1 AND m.active AND m.end_date >= $2 AND m.start_date <= $3
ORDER BY m.start_date
`

func (q *Queries) ListActiveMaintenanceByProperty(ctx context.Context, db DBTX, propertyID uuid.UUID, since, until pgtype.Date) ([]MaintenanceSchedule, error) {
	return collectMaintenance(db.Query(ctx, listActiveMaintenanceByProperty, propertyID, since, until))
}
