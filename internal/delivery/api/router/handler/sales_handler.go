package handler

import (
	"net/http"

	"pumpdesk/internal/delivery/api/response"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SalesHandlerParams holds dependencies for SalesHandler, injected by Fx.
type SalesHandlerParams struct {
	fx.In

	SalesUC usecase.SalesUsecase
}

// SalesHandler serves indents, transactions and the daily sales report.
type SalesHandler struct {
	salesUC usecase.SalesUsecase
}

// NewSalesHandler is the constructor for SalesHandler
func NewSalesHandler(params SalesHandlerParams) *SalesHandler {
	return &SalesHandler{salesUC: params.SalesUC}
}

type CreateIndentRequest struct {
	CustomerID uuid.UUID `json:"customer_id" validate:"required"`
	VehicleID  uuid.UUID `json:"vehicle_id" validate:"required"`
	FuelType   string    `json:"fuel_type" validate:"required"`
	Quantity   float64   `json:"quantity" validate:"gt=0"`
	Amount     float64   `json:"amount" validate:"gte=0"`
}

// CreateTransactionRequest records a sale. With indent_id set, the missing
// customer, vehicle and fuel fields are taken from the indent.
type CreateTransactionRequest struct {
	CustomerID    *uuid.UUID `json:"customer_id"`
	VehicleID     *uuid.UUID `json:"vehicle_id"`
	StaffID       *uuid.UUID `json:"staff_id"`
	IndentID      *string    `json:"indent_id" validate:"omitempty,min=1"`
	FuelType      string     `json:"fuel_type" validate:"required_without=IndentID"`
	Quantity      float64    `json:"quantity" validate:"gte=0"`
	Amount        float64    `json:"amount" validate:"gte=0"`
	PaymentMethod string     `json:"payment_method" validate:"required"`
	Date          string     `json:"date" validate:"omitempty,datetime=2006-01-02"`
}

// ListIndents supports ?customer_id= filtering.
func (h *SalesHandler) ListIndents(c echo.Context) error {
	customerID, ok := queryUUID(c, "customer_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid customer ID")
	}

	indents, err := h.salesUC.ListIndents(c.Request().Context(), customerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, indents)
}

func (h *SalesHandler) GetIndent(c echo.Context) error {
	indent, err := h.salesUC.GetIndent(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, indent)
}

func (h *SalesHandler) CreateIndent(c echo.Context) error {
	var req CreateIndentRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid indent input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	indent, err := h.salesUC.CreateIndent(c.Request().Context(), &usecase.CreateIndentInput{
		CustomerID: req.CustomerID,
		VehicleID:  req.VehicleID,
		FuelType:   req.FuelType,
		Quantity:   req.Quantity,
		Amount:     req.Amount,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, indent)
}

// IndentQR renders the indent slip as a PNG QR code.
func (h *SalesHandler) IndentQR(c echo.Context) error {
	png, err := h.salesUC.IndentQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

// ListTransactions supports ?date= filtering.
func (h *SalesHandler) ListTransactions(c echo.Context) error {
	var query DateQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid date filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	transactions, err := h.salesUC.ListTransactions(c.Request().Context(), query.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

func (h *SalesHandler) CreateTransaction(c echo.Context) error {
	var req CreateTransactionRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid transaction input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	transaction, err := h.salesUC.CreateTransaction(c.Request().Context(), &usecase.CreateTransactionInput{
		CustomerID:    req.CustomerID,
		VehicleID:     req.VehicleID,
		StaffID:       req.StaffID,
		IndentID:      req.IndentID,
		FuelType:      req.FuelType,
		Quantity:      req.Quantity,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		Date:          req.Date,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, transaction)
}

// DailySales aggregates the transactions of ?date= (today when absent).
func (h *SalesHandler) DailySales(c echo.Context) error {
	var query DateQuery
	if err := c.Bind(&query); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid date filter")
	}

	if err := c.Validate(&query); err != nil {
		return response.ValidationError(c, err)
	}

	report, err := h.salesUC.DailySalesReport(c.Request().Context(), query.Date)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report)
}
