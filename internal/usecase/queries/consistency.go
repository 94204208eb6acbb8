package queries

import (
	"context"
	"log/slog"

	"parking-reservation/internal/infra/query"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/queries/consistency_mock.go -package=queriesmock parking-reservation/internal/usecase/queries ConsistencyQueries

type ConsistencyQueries interface {
	Check(ctx context.Context) (*DriftReport, error)
}

type ConsistencyReadStore interface {
	Drift(ctx context.Context, db query.DBTX) (*DriftReport, error)
}

type consistencyQueriesImpl struct {
	uow       shared.UnitOfWork
	readStore ConsistencyReadStore
}

func NewConsistencyQueries(uow shared.UnitOfWork, readStore ConsistencyReadStore) ConsistencyQueries {
	return &consistencyQueriesImpl{uow: uow, readStore: readStore}
}

func (q *consistencyQueriesImpl) Check(ctx context.Context) (*DriftReport, error) {
	var report *DriftReport
	err := q.uow.WithinReadOnly(ctx, func(ctx context.Context, db query.DBTX) error {
		var err error
		report, err = q.readStore.Drift(ctx, db)
		return err
	})
	if err != nil {
		return nil, shared.Categorize(err)
	}

	if !report.Consistent() {
		slog.Warn("counter drift detected",
			"lots", len(report.Lots),
			"users", len(report.Users))
	}
	return report, nil
}
