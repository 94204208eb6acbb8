package commands

import (
	"context"
	"errors"
	"log/slog"

	"parking-reservation/internal/domain/address"
	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/spot"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/commands/lot_mock.go -package=commandsmock parking-reservation/internal/usecase/commands LotCommands

type LotCommands interface {
	// CreateLot stores the lot together with spots 1..MaxSpots.
	CreateLot(ctx context.Context, in LotInput) (int64, error)
	// UpdateLot replaces the lot details and resizes it to in.MaxSpots.
	UpdateLot(ctx context.Context, lotID int64, in LotInput) error
	// ToggleLot flips is_active and returns the new value.
	ToggleLot(ctx context.Context, lotID int64) (bool, error)
	// DeleteSpot removes one Available spot and lowers the capacity by one.
	DeleteSpot(ctx context.Context, lotID int64, spotNumber int) error
}

type lotCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewLotCommands(uow shared.UnitOfWork) LotCommands {
	return &lotCommandsImpl{uow: uow}
}

func (in LotInput) details() (lot.Details, error) {
	pincode, err := address.NewPincode(in.Pincode)
	if err != nil {
		return lot.Details{}, invalidInput(err)
	}
	return lot.Details{
		Name:        in.Name,
		Address:     in.Address,
		Pincode:     pincode,
		CostPerHour: in.CostPerHour,
	}, nil
}

func (uc *lotCommandsImpl) CreateLot(ctx context.Context, in LotInput) (int64, error) {
	details, err := in.details()
	if err != nil {
		return 0, err
	}
	l, err := lot.NewLot(details, in.MaxSpots)
	if err != nil {
		return 0, invalidInput(err)
	}

	var lotID int64
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Lots().Create(ctx, l)
		if err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateLot
			}
			return err
		}
		lotID = id
		return tx.Spots().CreateBatch(ctx, id, lot.PlanGrow(nil, in.MaxSpots))
	})
	if err != nil {
		return 0, shared.Categorize(err)
	}

	slog.Info("lot created", "lot_id", lotID, "max_spots", in.MaxSpots)
	return lotID, nil
}

func (uc *lotCommandsImpl) UpdateLot(ctx context.Context, lotID int64, in LotInput) error {
	details, err := in.details()
	if err != nil {
		return err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := lockLot(ctx, tx, lotID)
		if err != nil {
			return err
		}

		if err := l.UpdateDetails(details); err != nil {
			return invalidInput(err)
		}
		if err := tx.Lots().UpdateDetails(ctx, l); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return ErrDuplicateLot
			}
			return err
		}

		return resize(ctx, tx, l, in.MaxSpots)
	})
	return shared.Categorize(err)
}

// resize runs with the lot row already locked. Shrinking skip-locks free
// spots, so spots claimed by in-flight bookings count as occupied.
func resize(ctx context.Context, tx shared.Tx, l *lot.Lot, newMax int) error {
	plan, err := l.PlanResize(newMax)
	if err != nil {
		var shrinkErr *lot.ShrinkError
		if errors.As(err, &shrinkErr) {
			return errs.Mark(err, errs.ErrSpotsOccupied)
		}
		return invalidInput(err)
	}
	if plan.IsNoop() {
		return nil
	}

	switch {
	case plan.Grow > 0:
		existing, err := tx.Spots().Numbers(ctx, l.ID())
		if err != nil {
			return err
		}
		if err := tx.Spots().CreateBatch(ctx, l.ID(), lot.PlanGrow(existing, plan.Grow)); err != nil {
			return err
		}

	case plan.Shrink > 0:
		ids, err := tx.Spots().LockReclaimable(ctx, l.ID(), plan.Shrink)
		if err != nil {
			return err
		}
		if len(ids) < plan.Shrink {
			return errs.Mark(&lot.ShrinkError{Requested: plan.Shrink, Reclaimable: len(ids)}, errs.ErrSpotsOccupied)
		}
		deleted, err := tx.Spots().DeleteAvailable(ctx, ids)
		if err != nil {
			if errors.Is(err, spot.ErrSpotOccupied) {
				return errs.Mark(&lot.ShrinkError{Requested: plan.Shrink, Reclaimable: 0}, errs.ErrSpotsOccupied)
			}
			return err
		}
		if deleted != plan.Shrink {
			return errs.Mark(&lot.ShrinkError{Requested: plan.Shrink, Reclaimable: deleted}, errs.ErrSpotsOccupied)
		}
	}

	l.ApplyResize(plan)
	if err := tx.Lots().UpdateCapacity(ctx, l); err != nil {
		return err
	}

	slog.Info("lot resized",
		"lot_id", l.ID(),
		"old_max", plan.OldMax,
		"new_max", plan.NewMax)
	return nil
}

func (uc *lotCommandsImpl) ToggleLot(ctx context.Context, lotID int64) (bool, error) {
	var active bool
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := lockLot(ctx, tx, lotID)
		if err != nil {
			return err
		}
		active = !l.IsActive()
		return tx.Lots().SetActive(ctx, lotID, active)
	})
	if err != nil {
		return false, shared.Categorize(err)
	}
	return active, nil
}

func (uc *lotCommandsImpl) DeleteSpot(ctx context.Context, lotID int64, spotNumber int) error {
	// Spot before lot, the same order booking and release take them in.
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		s, err := tx.Spots().FindForUpdate(ctx, lotID, spotNumber)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				if _, lerr := tx.Lots().FindByID(ctx, lotID); infra.IsKind(lerr, infra.KindNotFound) {
					return ErrLotNotFound
				}
				return ErrSpotNotFound
			}
			return err
		}
		if err := s.CanDelete(); err != nil {
			return errs.Mark(err, errs.ErrConstraintViolation)
		}

		l, err := lockLot(ctx, tx, lotID)
		if err != nil {
			return err
		}

		deleted, err := tx.Spots().DeleteAvailable(ctx, []int64{s.ID()})
		if err != nil {
			if errors.Is(err, spot.ErrSpotOccupied) {
				return errs.Mark(err, errs.ErrConstraintViolation)
			}
			return err
		}
		if deleted != 1 {
			return errs.Mark(spot.ErrSpotOccupied, errs.ErrConstraintViolation)
		}

		l.ApplyResize(lot.ResizePlan{OldMax: l.MaxSpots(), NewMax: l.MaxSpots() - 1, Shrink: 1})
		return tx.Lots().UpdateCapacity(ctx, l)
	})
	if err != nil {
		return shared.Categorize(err)
	}

	slog.Info("spot deleted", "lot_id", lotID, "spot_number", spotNumber)
	return nil
}

func lockLot(ctx context.Context, tx shared.Tx, lotID int64) (*lot.Lot, error) {
	l, err := tx.Lots().FindByIDForUpdate(ctx, lotID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrLotNotFound
		}
		return nil, err
	}
	return l, nil
}
