package queries

import (
	"context"

	"parking-reservation/internal/infra"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/queries/lot_mock.go -package=queriesmock parking-reservation/internal/usecase/queries LotQueries

type LotQueries interface {
	// List returns active lots for users; admins see inactive lots as well.
	List(ctx context.Context, filter LotFilter) ([]*LotView, error)
	GetByID(ctx context.Context, id int64) (*LotView, error)
	// ListSpots orders by spot number unless filter says otherwise.
	ListSpots(ctx context.Context, lotID int64, filter SpotFilter) ([]*SpotView, error)
}

type LotReadStore interface {
	FindByID(ctx context.Context, id int64) (*LotView, error)
	List(ctx context.Context, filter LotFilter) ([]*LotView, error)
	ListSpots(ctx context.Context, lotID int64, filter SpotFilter) ([]*SpotView, error)
}

type lotQueriesImpl struct {
	readStore LotReadStore
}

func NewLotQueries(readStore LotReadStore) LotQueries {
	return &lotQueriesImpl{readStore: readStore}
}

func (q *lotQueriesImpl) List(ctx context.Context, filter LotFilter) ([]*LotView, error) {
	if filter.Sort == "" {
		filter.Sort = LotSortName
	}
	if !filter.Sort.IsValid() {
		return nil, ErrInvalidSort
	}
	lots, err := q.readStore.List(ctx, filter)
	if err != nil {
		return nil, shared.Categorize(err)
	}
	return lots, nil
}

func (q *lotQueriesImpl) GetByID(ctx context.Context, id int64) (*LotView, error) {
	lot, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLotNotFound
		}
		return nil, shared.Categorize(err)
	}
	return lot, nil
}

func (q *lotQueriesImpl) ListSpots(ctx context.Context, lotID int64, filter SpotFilter) ([]*SpotView, error) {
	if filter.Sort == "" {
		filter.Sort = SpotSortNumber
	}
	if !filter.Sort.IsValid() {
		return nil, ErrInvalidSpotSort
	}
	if _, err := q.GetByID(ctx, lotID); err != nil {
		return nil, err
	}
	spots, err := q.readStore.ListSpots(ctx, lotID, filter)
	if err != nil {
		return nil, shared.Categorize(err)
	}
	return spots, nil
}
