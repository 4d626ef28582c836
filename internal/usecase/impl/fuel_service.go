package impl

import (
	"context"
	"math"
	"time"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	"pumpdesk/internal/domain/repository"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// fuelService implements the FuelUsecase interface.
type fuelService struct {
	fuelRepo repository.FuelRepository
	now      func() time.Time
}

// NewFuelService is the constructor for fuelService.
func NewFuelService(fuelRepo repository.FuelRepository) usecase.FuelUsecase {
	return &fuelService{fuelRepo: fuelRepo, now: time.Now}
}

func (srv *fuelService) ListReadings(ctx context.Context, date string) ([]*entity.Reading, error) {
	filter, err := dateFilter(date)
	if err != nil {
		return nil, err
	}

	return srv.fuelRepo.ListReadings(ctx, filter)
}

func (srv *fuelService) CreateReading(ctx context.Context, input *usecase.CreateReadingInput) (*entity.Reading, error) {
	if input.ClosingReading < input.OpeningReading {
		return nil, domainerrors.ErrValidationFailed.WithDetails("closing_reading is below opening_reading")
	}

	date, err := resolveDate(input.Date, srv.now)
	if err != nil {
		return nil, err
	}

	reading := &entity.Reading{
		PumpID:         input.PumpID,
		Shift:          input.Shift,
		StaffID:        input.StaffID,
		OpeningReading: input.OpeningReading,
		ClosingReading: input.ClosingReading,
		Date:           date,
	}
	if err := srv.fuelRepo.CreateReading(ctx, reading); err != nil {
		return nil, errors.Wrap(err, "failed to create reading")
	}

	return reading, nil
}

func (srv *fuelService) ListInventory(ctx context.Context) ([]*entity.InventoryItem, error) {
	return srv.fuelRepo.ListInventory(ctx, nil)
}

func (srv *fuelService) CreateInventory(ctx context.Context, input *usecase.CreateInventoryInput) (*entity.InventoryItem, error) {
	date, err := resolveDate(input.Date, srv.now)
	if err != nil {
		return nil, err
	}

	item := &entity.InventoryItem{
		FuelType:     input.FuelType,
		Quantity:     input.Quantity,
		PricePerUnit: input.PricePerUnit,
		Date:         date,
	}
	if err := srv.fuelRepo.CreateInventory(ctx, item); err != nil {
		return nil, errors.Wrap(err, "failed to create inventory entry")
	}

	return item, nil
}

func (srv *fuelService) UpdateInventory(ctx context.Context, id uuid.UUID, input *usecase.UpdateInventoryInput) (*entity.InventoryItem, error) {
	if input.Date != nil {
		if _, err := parseDate(*input.Date); err != nil {
			return nil, err
		}
	}

	patch := repository.Patch{}
	setIfPresent(patch, "quantity", input.Quantity)
	setIfPresent(patch, "price_per_unit", input.PricePerUnit)
	setIfPresent(patch, "date", input.Date)

	item, err := srv.fuelRepo.UpdateInventory(ctx, id, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update inventory entry")
	}

	return item, nil
}

func (srv *fuelService) ListConsumables(ctx context.Context, date string) ([]*entity.Consumable, error) {
	filter, err := dateFilter(date)
	if err != nil {
		return nil, err
	}

	return srv.fuelRepo.ListConsumables(ctx, filter)
}

// CreateConsumable derives the total price from quantity and unit price.
func (srv *fuelService) CreateConsumable(ctx context.Context, input *usecase.CreateConsumableInput) (*entity.Consumable, error) {
	date, err := resolveDate(input.Date, srv.now)
	if err != nil {
		return nil, err
	}

	consumable := &entity.Consumable{
		Name:         input.Name,
		Quantity:     input.Quantity,
		PricePerUnit: input.PricePerUnit,
		TotalPrice:   math.Round(input.Quantity*input.PricePerUnit*100) / 100,
		Date:         date,
	}
	if err := srv.fuelRepo.CreateConsumable(ctx, consumable); err != nil {
		return nil, errors.Wrap(err, "failed to create consumable")
	}

	return consumable, nil
}

func parseDate(date string) (time.Time, error) {
	parsed, err := time.Parse(entity.DateLayout, date)
	if err != nil {
		return time.Time{}, domainerrors.ErrValidationFailed.WithDetails("date must be YYYY-MM-DD")
	}

	return parsed, nil
}

// resolveDate validates date, or returns today when it is empty.
func resolveDate(date string, now func() time.Time) (string, error) {
	if date == "" {
		return entity.Today(now()), nil
	}
	if _, err := parseDate(date); err != nil {
		return "", err
	}

	return date, nil
}

func dateFilter(date string) (repository.Filter, error) {
	if date == "" {
		return nil, nil
	}
	if _, err := parseDate(date); err != nil {
		return nil, err
	}

	return repository.Filter{"date": date}, nil
}
