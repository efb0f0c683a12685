package pgq

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const roomColumns = `id, property_id, number, room_type, floor, capacity, tariff, amenities, status, active_stay_id, created_at, updated_at`

func scanRoom(row pgx.Row) (Room, error) {
	var i Room
	err := row.Scan(
		&i.ID,
		&i.PropertyID,
		&i.Number,
		&i.RoomType,
		&i.Floor,
		&i.Capacity,
		&i.Tariff,
		&i.Amenities,
		&i.Status,
		&i.ActiveStayID,
		&i.CreatedAt,
		&i.UpdatedAt,
	)
	return i, err
}

const createRoom = `
INSERT INTO rooms (id, property_id, number, room_type, floor, capacity, tariff, amenities, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $10)
`

type CreateRoomParams struct {
	ID         uuid.UUID
	PropertyID uuid.UUID
	Number     string
	RoomType   string
	Floor      string
	Capacity   int32
	Tariff     int64
	Amenities  []string
	Status     string
	CreatedAt  pgtype.Timestamptz
}

func (q *Queries) CreateRoom(ctx context.Context, db DBTX, arg CreateRoomParams) error {
	_, err := db.Exec(ctx, createRoom,
		arg.ID,
		arg.PropertyID,
		arg.Number,
		arg.RoomType,
		arg.Floor,
		arg.Capacity,
		arg.Tariff,
		arg.Amenities,
		arg.Status,
		arg.CreatedAt,
	)
	return err
}

const getRoomByID = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

func (q *Queries) GetRoomByID(ctx context.Context, db DBTX, id uuid.UUID) (Room, error) {
	return scanRoom(db.QueryRow(ctx, getRoomByID, id))
}

const getRoomByNumber = `SELECT ` + roomColumns + ` FROM rooms WHERE property_id = $1 AND number = $2`

func (q *Queries) GetRoomByNumber(ctx context.Context, db DBTX, propertyID uuid.UUID, number string) (Room, error) {
	return scanRoom(db.QueryRow(ctx, getRoomByNumber, propertyID, number))
}

// Every write that depends on a room's schedule takes this lock first.
const lockRoom = `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1 FOR UPDATE`

func (q *Queries) LockRoom(ctx context.Context, db DBTX, id uuid.UUID) (Room, error) {
	return scanRoom(db.QueryRow(ctx, lockRoom, id))
}

const updateRoomStatus = `
UPDATE rooms
SET status = $2, active_stay_id = $3, updated_at = $4
WHERE id = $1
`

type UpdateRoomStatusParams struct {
	ID           uuid.UUID
	Status       string
	ActiveStayID pgtype.UUID
	UpdatedAt    pgtype.Timestamptz
}

func (q *Queries) UpdateRoomStatus(ctx context.Context, db DBTX, arg UpdateRoomStatusParams) (int64, error) {
	tag, err := db.Exec(ctx, updateRoomStatus, arg.ID, arg.Status, arg.ActiveStayID, arg.UpdatedAt)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

const listRoomsByProperty = `SELECT ` + roomColumns + ` FROM rooms WHERE property_id = $1 ORDER BY number`

func (q *Queries) ListRoomsByProperty(ctx context.Context, db DBTX, propertyID uuid.UUID) ([]Room, error) {
	rows, err := db.Query(ctx, listRoomsByProperty, propertyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var items []Room
	for rows.Next() {
		i, err := scanRoom(rows)
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
