package handler

import (
	"net/http"
	"time"

	"pumpdesk/internal/delivery/api/response"
	"pumpdesk/internal/domain/entity"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// FuelPumpHandlerParams holds dependencies for FuelPumpHandler, injected by Fx.
type FuelPumpHandlerParams struct {
	fx.In

	FuelPumpUC usecase.FuelPumpUsecase
}

// FuelPumpHandler serves the fuel pump registry.
type FuelPumpHandler struct {
	fuelPumpUC usecase.FuelPumpUsecase
}

// NewFuelPumpHandler is the constructor for FuelPumpHandler
func NewFuelPumpHandler(params FuelPumpHandlerParams) *FuelPumpHandler {
	return &FuelPumpHandler{fuelPumpUC: params.FuelPumpUC}
}

// CreateFuelPumpRequest registers a station together with its owner login.
type CreateFuelPumpRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address"`
	Contact  string `json:"contact_number"`
	Password string `json:"password" validate:"required"`
}

// FuelPumpResponse exposes a pump without any pending reset password.
type FuelPumpResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Address   string    `json:"address"`
	Contact   string    `json:"contact_number"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func toFuelPumpResponse(pump *entity.FuelPump) *FuelPumpResponse {
	return &FuelPumpResponse{
		ID:        pump.ID,
		Name:      pump.Name,
		Email:     pump.Email,
		Address:   pump.Address,
		Contact:   pump.Contact,
		Status:    pump.PublicStatus(),
		CreatedAt: pump.CreatedAt,
		UpdatedAt: pump.UpdatedAt,
	}
}

// ListFuelPumps returns every registered pump.
func (h *FuelPumpHandler) ListFuelPumps(c echo.Context) error {
	pumps, err := h.fuelPumpUC.ListFuelPumps(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	out := make([]*FuelPumpResponse, 0, len(pumps))
	for _, pump := range pumps {
		out = append(out, toFuelPumpResponse(pump))
	}

	return response.Success(c, http.StatusOK, out)
}

// GetFuelPump returns one pump.
func (h *FuelPumpHandler) GetFuelPump(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid fuel pump ID")
	}

	pump, err := h.fuelPumpUC.GetFuelPump(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, toFuelPumpResponse(pump))
}

// CreateFuelPump registers a pump and its administrator account.
func (h *FuelPumpHandler) CreateFuelPump(c echo.Context) error {
	var req CreateFuelPumpRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid fuel pump input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	pump, err := h.fuelPumpUC.CreateFuelPump(c.Request().Context(), &usecase.CreateFuelPumpInput{
		Name:     req.Name,
		Email:    req.Email,
		Address:  req.Address,
		Contact:  req.Contact,
		Password: req.Password,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, toFuelPumpResponse(pump))
}
