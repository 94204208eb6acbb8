package components

import (
	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/infra/readstore"
	"parking-reservation/internal/infra/uow"
	"parking-reservation/internal/usecase/queries"
	"parking-reservation/internal/usecase/shared"

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

// Write repositories are built per transaction by the unit of work, so only
// the read side is registered here.
var readstoreModule = fx.Module("persistence/readstore",
	fx.Provide(
		// Lot
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.LotReadQueries)),
		),
		fx.Annotate(
			readstore.NewLotReadStore,
			fx.As(new(queries.LotReadStore)),
		),
		// Reservation
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ReservationReadQueries)),
		),
		fx.Annotate(
			readstore.NewReservationReadStore,
			fx.As(new(queries.ReservationReadStore)),
		),
		// User
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.UserReadQueries)),
		),
		fx.Annotate(
			readstore.NewUserReadStore,
			fx.As(new(queries.UserReadStore)),
		),
		// Consistency
		fx.Annotate(
			NewSQLQueries,
			fx.As(new(readstore.ConsistencyQueries)),
		),
		fx.Annotate(
			readstore.NewConsistencyReadStore,
			fx.As(new(queries.ConsistencyReadStore)),
		),
	),
)

var unitOfWorkModule = fx.Module("persistence/uow",
	fx.Provide(
		fx.Annotate(
			uow.NewPostgresUoW,
			fx.As(new(shared.UnitOfWork)),
		),
	),
)

func NewSQLQueries(_ *pgxpool.Pool) *query.Queries {
	return query.New()
}

func NewDBTX(pool *pgxpool.Pool) query.DBTX {
	return pool
}
