//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// CreateTestRoom inserts an available room directly, bypassing the API.
func CreateTestRoom(t *testing.T, db DBLike, propertyID uuid.UUID, number string, tariff int64) uuid.UUID {
	t.Helper()

	roomID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO rooms (id, property_id, number, room_type, floor, capacity, tariff) VALUES ($1, $2, $3, 'deluxe', '1', 2, $4)",
		roomID, propertyID, number, tariff)
	require.NoError(t, err)
	return roomID
}

// CreateTestOrder stands in for the point-of-sale system placing a served order.
func CreateTestOrder(t *testing.T, db DBLike, propertyID uuid.UUID, amount int64) uuid.UUID {
	t.Helper()

	orderID := uuid.New()
	_, err := db.Exec(context.Background(),
		"INSERT INTO orders (id, property_id, amount) VALUES ($1, $2, $3)",
		orderID, propertyID, amount)
	require.NoError(t, err)
	return orderID
}

// OrderState reports the stay flags and payment status the engine writes on an order.
type OrderState struct {
	LinkedTo      *uuid.UUID
	BilledVia     *uuid.UUID
	PaymentStatus string
}

func GetOrderState(t *testing.T, db DBLike, orderID uuid.UUID) OrderState {
	t.Helper()

	var s OrderState
	err := db.QueryRow(context.Background(),
		"SELECT linked_to_stay_id, billed_via_stay_id, payment_status FROM orders WHERE id = $1", orderID).
		Scan(&s.LinkedTo, &s.BilledVia, &s.PaymentStatus)
	require.NoError(t, err)
	return s
}

// CountNightClaims counts the nights held on a room by any owner.
func CountNightClaims(t *testing.T, db DBLike, roomID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(), "SELECT count(*) FROM room_night_claims WHERE room_id = $1", roomID).Scan(&n)
	require.NoError(t, err)
	return n
}

func CountRows(t *testing.T, db DBLike, table, where string, args ...any) int {
	t.Helper()

	q := "SELECT count(*) FROM " + table
	if where != "" {
		q += " WHERE " + where
	}
	var n int
	require.NoError(t, db.QueryRow(context.Background(), q, args...).Scan(&n))
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('schema_migrations')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
