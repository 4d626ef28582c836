package handler

import (
	"net/http"
	"testing"
	"time"

	"pumpdesk/internal/domain/entity"
	domainerrors "pumpdesk/internal/domain/errors"
	mockUC "pumpdesk/internal/mocks/usecase"
	"pumpdesk/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestFuelPumpHandler_HidesPendingPassword(t *testing.T) {
	e := newTestEcho()
	pumpUC := mockUC.NewMockFuelPumpUsecase(t)
	h := NewFuelPumpHandler(FuelPumpHandlerParams{FuelPumpUC: pumpUC})
	e.GET("/api/fuel-pumps", h.ListFuelPumps)

	pumpUC.EXPECT().ListFuelPumps(mock.Anything).Return([]*entity.FuelPump{{
		ID:     uuid.New(),
		Name:   "Main Street Fuel Station",
		Email:  "admin@example.com",
		Status: entity.PendingResetStatus("NewPass1"),
	}}, nil).Once()

	rec := doRequest(e, http.MethodGet, "/api/fuel-pumps", "", nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "NewPass1")

	pumps := decodeData[[]FuelPumpResponse](t, rec)
	require.Len(t, pumps, 1)
	assert.Equal(t, "pending_reset", pumps[0].Status)
}

func TestFuelPumpHandler_GetFuelPump_InvalidID(t *testing.T) {
	e := newTestEcho()
	h := NewFuelPumpHandler(FuelPumpHandlerParams{FuelPumpUC: mockUC.NewMockFuelPumpUsecase(t)})
	e.GET("/api/fuel-pumps/:id", h.GetFuelPump)

	rec := doRequest(e, http.MethodGet, "/api/fuel-pumps/not-a-uuid", "", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_ID", decodeErrorCode(t, rec))
}

func TestCustomerHandler_UpdateCustomer_PartialPatch(t *testing.T) {
	e := newTestEcho()
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC})
	e.PATCH("/api/customers/:id", h.UpdateCustomer)

	id := uuid.New()
	customerUC.EXPECT().
		UpdateCustomer(mock.Anything, id, mock.MatchedBy(func(input *usecase.UpdateCustomerInput) bool {
			return input.Name == nil && input.Balance != nil && *input.Balance == 2500
		})).
		Return(&entity.Customer{ID: id, Name: "Rajesh Enterprises", Balance: 2500}, nil).
		Once()

	rec := doRequest(e, http.MethodPatch, "/api/customers/"+id.String(), `{"balance":2500}`, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.InDelta(t, 2500, decodeData[entity.Customer](t, rec).Balance, 0.001)
}

func TestCustomerHandler_ListVehicles_Filter(t *testing.T) {
	e := newTestEcho()
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC})
	e.GET("/api/vehicles", h.ListVehicles)

	t.Run("invalid customer id", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/vehicles?customer_id=abc", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("filters by customer", func(t *testing.T) {
		customerID := uuid.New()
		customerUC.EXPECT().
			ListVehicles(mock.Anything, &customerID).
			Return([]*entity.Vehicle{{ID: uuid.New(), CustomerID: customerID, Number: "KA-01-AB-1234"}}, nil).
			Once()

		rec := doRequest(e, http.MethodGet, "/api/vehicles?customer_id="+customerID.String(), "", nil)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decodeData[[]entity.Vehicle](t, rec), 1)
	})
}

func TestCustomerHandler_CreateVehicle_UnknownCustomer(t *testing.T) {
	e := newTestEcho()
	customerUC := mockUC.NewMockCustomerUsecase(t)
	h := NewCustomerHandler(CustomerHandlerParams{CustomerUC: customerUC})
	e.POST("/api/vehicles", h.CreateVehicle)

	customerUC.EXPECT().CreateVehicle(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrInvalidReference.WithDetails("customer does not exist")).
		Once()

	rec := doRequest(e, http.MethodPost, "/api/vehicles", `{"customer_id":"`+uuid.NewString()+`","number":"KA-01-ZZ-0001"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "INVALID_REFERENCE", decodeErrorCode(t, rec))
}

func TestStaffHandler_StartShift_Validation(t *testing.T) {
	e := newTestEcho()
	staffUC := mockUC.NewMockStaffUsecase(t)
	h := NewStaffHandler(StaffHandlerParams{StaffUC: staffUC})
	e.POST("/api/shifts", h.StartShift)

	rec := doRequest(e, http.MethodPost, "/api/shifts", `{"staff_id":"`+uuid.NewString()+`","shift_type":"Night"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "VALIDATION_ERROR", decodeErrorCode(t, rec))
}

func TestStaffHandler_EndShift(t *testing.T) {
	e := newTestEcho()
	staffUC := mockUC.NewMockStaffUsecase(t)
	h := NewStaffHandler(StaffHandlerParams{StaffUC: staffUC})
	e.POST("/api/shifts/:id/end", h.EndShift)

	id := uuid.New()
	end := time.Date(2024, 1, 15, 18, 0, 0, 0, time.UTC)

	t.Run("without body", func(t *testing.T) {
		staffUC.EXPECT().EndShift(mock.Anything, id, (*time.Time)(nil)).
			Return(&entity.Shift{ID: id, Status: entity.ShiftStatusCompleted}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/shifts/"+id.String()+"/end", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("with end time", func(t *testing.T) {
		staffUC.EXPECT().EndShift(mock.Anything, id, &end).
			Return(&entity.Shift{ID: id, EndTime: &end, Status: entity.ShiftStatusCompleted}, nil).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/shifts/"+id.String()+"/end", `{"end_time":"2024-01-15T18:00:00Z"}`, nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("already ended", func(t *testing.T) {
		other := uuid.New()
		staffUC.EXPECT().EndShift(mock.Anything, other, (*time.Time)(nil)).
			Return(nil, domainerrors.ErrShiftAlreadyEnded).
			Once()

		rec := doRequest(e, http.MethodPost, "/api/shifts/"+other.String()+"/end", "", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
	})
}

func TestFuelHandler_ListReadings_DateFilter(t *testing.T) {
	e := newTestEcho()
	fuelUC := mockUC.NewMockFuelUsecase(t)
	h := NewFuelHandler(FuelHandlerParams{FuelUC: fuelUC})
	e.GET("/api/readings", h.ListReadings)

	t.Run("rejects malformed dates", func(t *testing.T) {
		rec := doRequest(e, http.MethodGet, "/api/readings?date=15-01-2024", "", nil)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("passes the date through", func(t *testing.T) {
		fuelUC.EXPECT().ListReadings(mock.Anything, "2024-01-15").Return([]*entity.Reading{}, nil).Once()

		rec := doRequest(e, http.MethodGet, "/api/readings?date=2024-01-15", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
	})
}

func TestFuelHandler_CreateConsumable(t *testing.T) {
	e := newTestEcho()
	fuelUC := mockUC.NewMockFuelUsecase(t)
	h := NewFuelHandler(FuelHandlerParams{FuelUC: fuelUC})
	e.POST("/api/consumables", h.CreateConsumable)

	fuelUC.EXPECT().
		CreateConsumable(mock.Anything, &usecase.CreateConsumableInput{Name: "Engine Oil", Quantity: 2, PricePerUnit: 350}).
		Return(&entity.Consumable{ID: uuid.New(), Name: "Engine Oil", Quantity: 2, PricePerUnit: 350, TotalPrice: 700}, nil).
		Once()

	rec := doRequest(e, http.MethodPost, "/api/consumables", `{"name":"Engine Oil","quantity":2,"price_per_unit":350}`, nil)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.InDelta(t, 700, decodeData[entity.Consumable](t, rec).TotalPrice, 0.001)
}
