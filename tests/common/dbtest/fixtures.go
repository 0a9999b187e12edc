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

	"hotel-booking/internal/infra/query"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

func CreateTestAccommodation(t *testing.T, db query.DBTX, name string) uuid.UUID {
	t.Helper()

	id, err := query.New().CreateAccommodation(context.Background(), db, query.CreateAccommodationParams{
		Name: name,
		City: "Lisbon",
	})
	require.NoError(t, err)
	return id
}

type RoomTypeFixture struct {
	Name              string
	NightlyPriceMinor int64
	Currency          string
	Capacity          int
	TotalInventory    int
}

func DefaultRoomType() RoomTypeFixture {
	return RoomTypeFixture{
		Name:              "Double Room",
		NightlyPriceMinor: 12000,
		Currency:          "usd",
		Capacity:          2,
		TotalInventory:    3,
	}
}

func CreateTestRoomType(t *testing.T, db DBLike, accommodationID uuid.UUID, f RoomTypeFixture) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO room_types (id, accommodation_id, name, nightly_price_minor, currency, capacity, total_inventory)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		id, accommodationID, f.Name, f.NightlyPriceMinor, f.Currency, f.Capacity, f.TotalInventory)
	require.NoError(t, err)
	return id
}

// CountHolding counts bookings of a room type that still hold inventory.
func CountHolding(t *testing.T, db DBLike, roomTypeID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT COALESCE(SUM(num_rooms), 0) FROM bookings WHERE room_type_id = $1 AND status <> 'cancelled'",
		roomTypeID).Scan(&n)
	require.NoError(t, err)
	return n
}

func PaymentStatus(t *testing.T, db DBLike, bookingID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(),
		"SELECT status FROM payments WHERE booking_id = $1", bookingID).Scan(&status)
	require.NoError(t, err)
	return status
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
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
