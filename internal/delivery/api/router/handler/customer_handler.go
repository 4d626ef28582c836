package handler

import (
	"net/http"

	"pumpdesk/internal/delivery/api/response"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CustomerHandlerParams holds dependencies for CustomerHandler, injected by Fx.
type CustomerHandlerParams struct {
	fx.In

	CustomerUC usecase.CustomerUsecase
}

// CustomerHandler serves credit customers and their vehicles.
type CustomerHandler struct {
	customerUC usecase.CustomerUsecase
}

// NewCustomerHandler is the constructor for CustomerHandler
func NewCustomerHandler(params CustomerHandlerParams) *CustomerHandler {
	return &CustomerHandler{customerUC: params.CustomerUC}
}

type CreateCustomerRequest struct {
	Name    string  `json:"name" validate:"required"`
	Contact string  `json:"contact"`
	Phone   string  `json:"phone"`
	Email   string  `json:"email" validate:"omitempty,email"`
	GST     string  `json:"gst"`
	Balance float64 `json:"balance"`
}

// UpdateCustomerRequest is a partial update; absent fields are left untouched.
type UpdateCustomerRequest struct {
	Name    *string  `json:"name" validate:"omitempty,min=1"`
	Contact *string  `json:"contact"`
	Phone   *string  `json:"phone"`
	Email   *string  `json:"email" validate:"omitempty,email"`
	GST     *string  `json:"gst"`
	Balance *float64 `json:"balance"`
}

type CreateVehicleRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	Number     string    `json:"number" validate:"required"`
	Type       string    `json:"type"`
	Capacity   string    `json:"capacity"`
}

func (h *CustomerHandler) ListCustomers(c echo.Context) error {
	customers, err := h.customerUC.ListCustomers(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customers)
}

func (h *CustomerHandler) GetCustomer(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	customer, err := h.customerUC.GetCustomer(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

func (h *CustomerHandler) CreateCustomer(c echo.Context) error {
	var req CreateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	customer, err := h.customerUC.CreateCustomer(c.Request().Context(), &usecase.CreateCustomerInput{
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Email:   req.Email,
		GST:     req.GST,
		Balance: req.Balance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, customer)
}

func (h *CustomerHandler) UpdateCustomer(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	var req UpdateCustomerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid customer input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	customer, err := h.customerUC.UpdateCustomer(c.Request().Context(), id, &usecase.UpdateCustomerInput{
		Name:    req.Name,
		Contact: req.Contact,
		Phone:   req.Phone,
		Email:   req.Email,
		GST:     req.GST,
		Balance: req.Balance,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, customer)
}

// ListVehicles supports ?customer_id= filtering.
func (h *CustomerHandler) ListVehicles(c echo.Context) error {
	customerID, ok := queryUUID(c, "customer_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	vehicles, err := h.customerUC.ListVehicles(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, vehicles)
}

func (h *CustomerHandler) CreateVehicle(c echo.Context) error {
	var req CreateVehicleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid vehicle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	vehicle, err := h.customerUC.CreateVehicle(c.Request().Context(), &usecase.CreateVehicleInput{
		CustomerID: req.CustomerID,
		Number:     req.Number,
		Type:       req.Type,
		Capacity:   req.Capacity,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, vehicle)
}
