package components

import (
	"vehicle-rental/internal/infra/readstore"
	sqlc "vehicle-rental/internal/infra/sqlc/generated"
	"vehicle-rental/internal/infra/uow"
	"vehicle-rental/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// Write-side repositories are built per transaction by the unit of work, so
// only the UoW and the read stores are provided here.
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewSQLQueries,
		NewDBTX,
		fx.Annotate(
			NewTxBeginner,
			fx.As(new(uow.TxBeginner)),
		),
		uow.NewPostgresUoW,
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.BookingViewQueries)),
		),
		fx.Annotate(
			readstore.NewBookingReadStore,
			fx.As(new(queries.BookingViewRepo)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *sqlc.Queries {
	return sqlc.New()
}

func NewDBTX(pool *pgxpool.Pool) sqlc.DBTX {
	return pool
}

func NewTxBeginner(pool *pgxpool.Pool) *pgxpool.Pool {
	return pool
}
