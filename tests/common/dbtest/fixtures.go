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

	"vehicle-rental/internal/domain/user"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func CreateTestUser(t *testing.T, db DBLike, name, email string, role user.Role) uuid.UUID {
	t.Helper()

	userID := uuid.New()
	ctx := context.Background()

	tag, err := db.Exec(ctx, `INSERT INTO users (id, name, email, role, driving_license_number, address)
		VALUES ($1, $2, $3, $4, $5, $6) ON CONFLICT (email) DO NOTHING`,
		userID, name, email, role.String(), "DL-"+userID.String()[:8], "1 Test Street")
	require.NoError(t, err)

	if tag.RowsAffected() == 0 {
		err = db.QueryRow(ctx, "SELECT id FROM users WHERE email = $1", email).Scan(&userID)
		require.NoError(t, err)
	}

	return userID
}

func CreateTestCustomer(t *testing.T, db DBLike, name, email string) uuid.UUID {
	t.Helper()
	return CreateTestUser(t, db, name, email, user.RoleCustomer)
}

func CreateTestAdmin(t *testing.T, db DBLike, email string) uuid.UUID {
	t.Helper()
	return CreateTestUser(t, db, "Fleet Admin", email, user.RoleAdmin)
}

type VehicleFixture struct {
	Type         string
	Brand        string
	Model        string
	PricePerDay  decimal.Decimal
	Available    bool
	Registration string
}

func DefaultVehicle() VehicleFixture {
	return VehicleFixture{
		Type:         "CAR",
		Brand:        "Toyota",
		Model:        "Corolla",
		PricePerDay:  decimal.RequireFromString("50.00"),
		Available:    true,
		Registration: "REG-" + strings.ToUpper(uuid.NewString()[:8]),
	}
}

func CreateTestVehicle(t *testing.T, db DBLike, v VehicleFixture) uuid.UUID {
	t.Helper()

	vehicleID := uuid.New()
	_, err := db.Exec(context.Background(), `INSERT INTO vehicles
		(id, vehicle_type, brand, model, rental_price_per_day, availability, registration_number, year_of_manufacture)
		VALUES ($1, $2, $3, $4, $5::numeric, $6, $7, $8)`,
		vehicleID, v.Type, v.Brand, v.Model, v.PricePerDay.StringFixed(2), v.Available, v.Registration, 2024)
	require.NoError(t, err)

	return vehicleID
}

// VehicleAvailable reads the availability flag straight from the table.
func VehicleAvailable(t *testing.T, db DBLike, vehicleID uuid.UUID) bool {
	t.Helper()

	var available bool
	err := db.QueryRow(context.Background(), "SELECT availability FROM vehicles WHERE id = $1", vehicleID).Scan(&available)
	require.NoError(t, err)
	return available
}

func CountNotificationJobs(t *testing.T, db DBLike, aggregateID uuid.UUID) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM notification_jobs WHERE aggregate_id = $1", aggregateID).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// ResetDB truncates every table except the migration ledger.
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
