package handler

import (
	"net/http"

	"pumpdesk/internal/delivery/api/response"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FuelHandlerParams holds dependencies for FuelHandler, injected by Fx.
type FuelHandlerParams struct {
	fx.In

	FuelUC usecase.FuelUsecase
}

// FuelHandler serves meter readings, fuel inventory and consumables.
type FuelHandler struct {
	fuelUC usecase.FuelUsecase
}

// NewFuelHandler is the constructor for FuelHandler
func NewFuelHandler(params FuelHandlerParams) *FuelHandler {
	return &FuelHandler{fuelUC: params.FuelUC}
}

// DateQuery is the optional ?date= filter shared by the dated listings.
type DateQuery struct {
	Date string `query:"date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateReadingRequest struct {
	PumpID         string    `json:"pump_id" validate:"required"`
	Shift          string    `json:"shift" validate:"required"`
	StaffID        uuid.UUID `json:"staff_id" validate:"required"`
	OpeningReading float64   `json:"opening_reading" validate:"gte=0"`
	ClosingReading float64   `json:"closing_reading" validate:"gte=0"`
	Date           string    `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateInventoryRequest struct {
	FuelType     string  `json:"fuel_type" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gte=0"`
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type UpdateInventoryRequest struct {
	Quantity     *float64 `json:"quantity" validate:"omitempty,gte=0"`
	PricePerUnit *float64 `json:"price_per_unit" validate:"omitempty,gte=0"`
	Date         *string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

type CreateConsumableRequest struct {
	Name         string  `json:"name" validate:"required"`
	Quantity     float64 `json:"quantity" validate:"gt=0"`
	PricePerUnit float64 `json:"price_per_unit" validate:"gte=0"`
	Date         string  `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ListReadings supports ?date= filtering.
func (h *FuelHandler) ListReadings(c echo.Context) error {
	var query DateQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid date filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	readings, err := h.fuelUC.ListReadings(c.Request().Context(), query.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, readings)
}

// CreateReading records a dispenser reading; date defaults to today.
func (h *FuelHandler) CreateReading(c echo.Context) error {
	var req CreateReadingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reading input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	reading, err := h.fuelUC.CreateReading(c.Request().Context(), &usecase.CreateReadingInput{
		PumpID:         req.PumpID,
		Shift:          req.Shift,
		StaffID:        req.StaffID,
		OpeningReading: req.OpeningReading,
		ClosingReading: req.ClosingReading,
		Date:           req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, reading)
}

func (h *FuelHandler) ListInventory(c echo.Context) error {
	items, err := h.fuelUC.ListInventory(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, items)
}

func (h *FuelHandler) CreateInventory(c echo.Context) error {
	var req CreateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.fuelUC.CreateInventory(c.Request().Context(), &usecase.CreateInventoryInput{
		FuelType:     req.FuelType,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Date:         req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, item)
}

func (h *FuelHandler) UpdateInventory(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid inventory ID")
	}

	var req UpdateInventoryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid inventory input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	item, err := h.fuelUC.UpdateInventory(c.Request().Context(), id, &usecase.UpdateInventoryInput{
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Date:         req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, item)
}

// ListConsumables supports ?date= filtering.
func (h *FuelHandler) ListConsumables(c echo.Context) error {
	var query DateQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid date filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	consumables, err := h.fuelUC.ListConsumables(c.Request().Context(), query.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, consumables)
}

func (h *FuelHandler) CreateConsumable(c echo.Context) error {
	var req CreateConsumableRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid consumable input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	consumable, err := h.fuelUC.CreateConsumable(c.Request().Context(), &usecase.CreateConsumableInput{
		Name:         req.Name,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Date:         req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, consumable)
}
