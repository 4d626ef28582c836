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

// StaffHandlerParams holds dependencies for StaffHandler, injected by Fx.
type StaffHandlerParams struct {
	fx.In

	StaffUC usecase.StaffUsecase
}

// StaffHandler serves staff records and shifts.
type StaffHandler struct {
	staffUC usecase.StaffUsecase
}

// NewStaffHandler is the constructor for StaffHandler
func NewStaffHandler(params StaffHandlerParams) *StaffHandler {
	return &StaffHandler{staffUC: params.StaffUC}
}

type CreateStaffRequest struct {
	Name          string   `json:"name" validate:"required"`
	Phone         string   `json:"phone"`
	Email         string   `json:"email" validate:"omitempty,email"`
	Role          string   `json:"role" validate:"required"`
	Salary        float64  `json:"salary" validate:"gte=0"`
	JoiningDate   string   `json:"joining_date" validate:"omitempty,datetime=2006-01-02"`
	AssignedPumps []string `json:"assigned_pumps"`
}

type StartShiftRequest struct {
	StaffID   uuid.UUID  `json:"staff_id" validate:"required"`
	ShiftType string     `json:"shift_type" validate:"required,oneof=Morning Afternoon Evening"`
	StartTime *time.Time `json:"start_time"`
}

type EndShiftRequest struct {
	EndTime *time.Time `json:"end_time"`
}

func (h *StaffHandler) ListStaff(c echo.Context) error {
	staff, err := h.staffUC.ListStaff(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

func (h *StaffHandler) GetStaff(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	staff, err := h.staffUC.GetStaff(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, staff)
}

func (h *StaffHandler) CreateStaff(c echo.Context) error {
	var req CreateStaffRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid staff input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	staff, err := h.staffUC.CreateStaff(c.Request().Context(), &usecase.CreateStaffInput{
		Name:          req.Name,
		Phone:         req.Phone,
		Email:         req.Email,
		Role:          req.Role,
		Salary:        req.Salary,
		JoiningDate:   req.JoiningDate,
		AssignedPumps: req.AssignedPumps,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, staff)
}

// ListShifts supports ?staff_id= filtering.
func (h *StaffHandler) ListShifts(c echo.Context) error {
	staffID, ok := queryUUID(c, "staff_id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid staff ID")
	}

	shifts, err := h.staffUC.ListShifts(c.Request().Context(), staffID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shifts)
}

// StartShift opens a shift; start_time defaults to now.
func (h *StaffHandler) StartShift(c echo.Context) error {
	var req StartShiftRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid shift input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, err)
	}

	shift, err := h.staffUC.StartShift(c.Request().Context(), &usecase.StartShiftInput{
		StaffID:   req.StaffID,
		ShiftType: entity.ShiftType(req.ShiftType),
		StartTime: req.StartTime,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, shift)
}

// EndShift closes a shift; end_time defaults to now.
func (h *StaffHandler) EndShift(c echo.Context) error {
	id, ok := pathUUID(c, "id")
	if !ok {
		return response.BadRequest(c, "INVALID_ID", "Invalid shift ID")
	}

	var req EndShiftRequest
	if c.Request().ContentLength != 0 {
		if err := c.Bind(&req); err != nil {
			return response.BindingError(c, "INVALID_INPUT", "Invalid shift input")
		}
	}

	shift, err := h.staffUC.EndShift(c.Request().Context(), id, req.EndTime)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, shift)
}
