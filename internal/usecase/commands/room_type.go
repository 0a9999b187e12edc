package commands

import (
	"context"
	"log/slog"

	"hotel-booking/internal/domain/inventory"
	"hotel-booking/internal/domain/money"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/clock"
	"hotel-booking/internal/pkg/errs"
	"hotel-booking/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomTypeRequest struct {
	AccommodationID uuid.UUID
	Name            string
	NightlyPrice    string
	Currency        string
	Capacity        int
	TotalInventory  int
}

// UpdateRoomTypeRequest leaves nil fields unchanged.
type UpdateRoomTypeRequest struct {
	Name           *string
	NightlyPrice   *string
	Capacity       *int
	TotalInventory *int
}

type RoomTypeCommands interface {
	CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error)
	UpdateRoomType(ctx context.Context, roomTypeID uuid.UUID, req UpdateRoomTypeRequest) error
}

type RoomTypeSettings struct {
	DefaultCurrency string
}

type roomTypeUseCaseImpl struct {
	uow      shared.UnitOfWork
	cache    ListingCache
	clock    clock.Clock
	settings RoomTypeSettings
}

func NewRoomTypeUseCase(uow shared.UnitOfWork, cache ListingCache, clk clock.Clock, settings RoomTypeSettings) RoomTypeCommands {
	return &roomTypeUseCaseImpl{uow: uow, cache: cache, clock: clk, settings: settings}
}

func (uc *roomTypeUseCaseImpl) CreateRoomType(ctx context.Context, req CreateRoomTypeRequest) (uuid.UUID, error) {
	currency := req.Currency
	if currency == "" {
		currency = uc.settings.DefaultCurrency
	}
	rate, err := money.Parse(req.NightlyPrice, currency)
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}
	rt, err := inventory.NewRoomType(req.AccommodationID, req.Name, rate, req.Capacity, req.TotalInventory, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrValidation)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.RoomTypes().Create(ctx, rt); err != nil {
			if infra.IsKind(err, infra.KindForeignKeyViolated) {
				return ErrAccommodationNotFound
			}
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	uc.invalidate(ctx, rt.AccommodationID())
	return rt.ID(), nil
}

func (uc *roomTypeUseCaseImpl) UpdateRoomType(ctx context.Context, roomTypeID uuid.UUID, req UpdateRoomTypeRequest) error {
	var accommodationID uuid.UUID
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rt, err := tx.RoomTypes().LockByID(ctx, roomTypeID)
		if err != nil {
			return lookupErr(err, ErrRoomTypeNotFound)
		}

		changes := inventory.Changes{
			Name:           req.Name,
			Capacity:       req.Capacity,
			TotalInventory: req.TotalInventory,
		}
		if req.NightlyPrice != nil {
			rate, err := money.Parse(*req.NightlyPrice, rt.NightlyRate().Currency())
			if err != nil {
				return errs.Mark(err, ErrValidation)
			}
			changes.NightlyRate = &rate
		}

		if err := rt.Apply(changes, uc.clock.Now()); err != nil {
			return errs.Mark(err, ErrValidation)
		}
		if err := tx.RoomTypes().Update(ctx, rt); err != nil {
			return errs.Mark(err, ErrDatabaseOperationFailed)
		}
		accommodationID = rt.AccommodationID()
		return nil
	})
	if err != nil {
		return err
	}

	uc.invalidate(ctx, accommodationID)
	return nil
}

// invalidate drops the cached listing; entries also expire on their own TTL.
func (uc *roomTypeUseCaseImpl) invalidate(ctx context.Context, accommodationID uuid.UUID) {
	if err := uc.cache.Invalidate(ctx, accommodationID); err != nil {
		slog.WarnContext(ctx, "failed to invalidate room type cache",
			"accommodation_id", accommodationID.String(),
			"error", err.Error())
	}
}
