package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"parking-reservation/internal/domain/lot"
	"parking-reservation/internal/domain/reservation"
	"parking-reservation/internal/domain/user"
	"parking-reservation/internal/infra"
	"parking-reservation/internal/pkg/clock"
	"parking-reservation/internal/pkg/errs"
	"parking-reservation/internal/pkg/pgconv"
	"parking-reservation/internal/usecase/shared"
)

//go:generate mockgen -destination=../../testutil/mock/commands/parking_mock.go -package=commandsmock parking-reservation/internal/usecase/commands ParkingCommands

type ParkingCommands interface {
	// Book allocates the lowest free spot of a lot and opens a reservation on it.
	Book(ctx context.Context, userID int64, in BookInput) (*BookResult, error)
	// Release closes an open reservation owned by userID. A second release
	// fails with errs.ErrAlreadyCompleted and changes nothing.
	Release(ctx context.Context, userID, reservationID int64) (*ReleaseResult, error)
}

type parkingCommandsImpl struct {
	uow     shared.UnitOfWork
	clock   clock.Clock
	metrics ParkingMetrics
}

func NewParkingCommands(uow shared.UnitOfWork, clk clock.Clock, metrics ParkingMetrics) ParkingCommands {
	if metrics == nil {
		metrics = NopMetrics()
	}
	return &parkingCommandsImpl{uow: uow, clock: clk, metrics: metrics}
}

func (uc *parkingCommandsImpl) Book(ctx context.Context, userID int64, in BookInput) (*BookResult, error) {
	vehicle, err := reservation.NewVehicleNumber(in.VehicleNumber)
	if err != nil {
		return nil, invalidInput(err)
	}

	var result *BookResult
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		l, err := tx.Lots().FindByID(ctx, in.LotID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrLotNotFound
			}
			return err
		}
		if err := l.AcceptsBookings(); err != nil {
			return noSpot(err)
		}

		h, err := tx.Spots().ClaimAvailable(ctx, l.ID())
		if err != nil {
			return noSpot(err)
		}

		now := uc.clock.Now()
		res, err := reservation.Open(userID, l.ID(), h.SpotNumber, vehicle, l.CostPerHour(), now)
		if err != nil {
			return invalidInput(err)
		}
		id, err := tx.Reservations().Create(ctx, res)
		if err != nil {
			return err
		}
		res.SetID(id)

		if err := tx.Spots().Occupy(ctx, h, id); err != nil {
			return err
		}
		if err := tx.Lots().TakeSpot(ctx, l.ID()); err != nil {
			return noSpot(err)
		}
		if err := tx.Users().StartParking(ctx, userID); err != nil {
			if errors.Is(err, user.ErrUserInactive) {
				return errs.Mark(err, errs.ErrConstraintViolation)
			}
			return err
		}

		if err := appendReservationEvent(ctx, tx, shared.EventReservationOpened, res, now); err != nil {
			return err
		}

		result = &BookResult{
			ReservationID: id,
			LotID:         l.ID(),
			SpotNumber:    h.SpotNumber,
			CostPerHour:   res.CostPerHour(),
			StartTime:     res.StartTime(),
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrNoAvailableSpot) {
			uc.metrics.BookingRejected(rejectReason(err))
		}
		return nil, shared.Categorize(err)
	}

	uc.metrics.ReservationOpened(result.LotID)
	slog.Info("reservation opened",
		"reservation_id", result.ReservationID,
		"lot_id", result.LotID,
		"spot_number", result.SpotNumber,
		"user_id", userID)
	return result, nil
}

func (uc *parkingCommandsImpl) Release(ctx context.Context, userID, reservationID int64) (*ReleaseResult, error) {
	var result *ReleaseResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		res, err := tx.Reservations().FindForUpdate(ctx, reservationID, userID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return ErrReservationNotFound
			}
			return err
		}
		if !res.IsOpen() {
			return errs.Mark(reservation.ErrAlreadyCompleted, errs.ErrAlreadyCompleted)
		}

		s, err := tx.Spots().FindForUpdate(ctx, res.LotID(), res.SpotNumber())
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.Mark(errs.Wrapf(err, "spot %d of lot %d is gone", res.SpotNumber(), res.LotID()), errs.ErrConstraintViolation)
			}
			return err
		}
		// reservation_id on the spot is bookkeeping only; the reservation row decides.
		if held := s.ReservationID(); held == nil || *held != res.ID() {
			var heldID any
			if held != nil {
				heldID = *held
			}
			slog.Warn("spot back-reference drifted, freeing it anyway",
				"reservation_id", res.ID(),
				"lot_id", res.LotID(),
				"spot_number", res.SpotNumber(),
				"spot_reservation_id", heldID)
		}

		now := uc.clock.Now()
		cost, err := res.Close(now)
		if err != nil {
			return errs.Mark(err, errs.ErrAlreadyCompleted)
		}
		if err := tx.Reservations().Close(ctx, res); err != nil {
			if errors.Is(err, reservation.ErrAlreadyCompleted) {
				return errs.Mark(err, errs.ErrAlreadyCompleted)
			}
			return err
		}
		if err := tx.Spots().Free(ctx, s.ID()); err != nil {
			return err
		}
		if err := tx.Lots().ReturnSpot(ctx, res.LotID(), cost); err != nil {
			return err
		}
		if err := tx.Users().EndParking(ctx, res.UserID()); err != nil {
			return err
		}

		if err := appendReservationEvent(ctx, tx, shared.EventReservationClosed, res, now); err != nil {
			return err
		}

		result = &ReleaseResult{
			ReservationID: res.ID(),
			LotID:         res.LotID(),
			SpotNumber:    res.SpotNumber(),
			TotalCost:     cost,
			EndTime:       now,
		}
		return nil
	})
	if err != nil {
		return nil, shared.Categorize(err)
	}

	uc.metrics.ReservationClosed(result.LotID, result.TotalCost)
	slog.Info("reservation closed",
		"reservation_id", result.ReservationID,
		"lot_id", result.LotID,
		"total_cost", result.TotalCost.StringFixed(2))
	return result, nil
}

func noSpot(err error) error {
	if errors.Is(err, lot.ErrLotFull) || errors.Is(err, lot.ErrLotInactive) {
		return errs.Mark(err, errs.ErrNoAvailableSpot)
	}
	return err
}

func rejectReason(err error) string {
	if errors.Is(err, lot.ErrLotInactive) {
		return "inactive"
	}
	return "full"
}

func appendReservationEvent(ctx context.Context, tx shared.Tx, eventType string, res *reservation.Reservation, now time.Time) error {
	payload := shared.ReservationEventPayload{
		ReservationID: res.ID(),
		UserID:        res.UserID(),
		LotID:         res.LotID(),
		SpotNumber:    res.SpotNumber(),
		VehicleNumber: res.VehicleNumber().String(),
		CostPerHour:   pgconv.DecimalToText(res.CostPerHour()),
		OccurredAt:    now,
	}
	if total := res.TotalCost(); total != nil {
		s := pgconv.DecimalToText(*total)
		payload.TotalCost = &s
	}

	event, err := shared.NewEvent(eventType, res.ID(), payload, now)
	if err != nil {
		return err
	}
	return tx.Events().Append(ctx, event)
}
