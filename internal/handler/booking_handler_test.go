package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Breezy-Reese/hotel/internal/dto"
	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/service"
	"github.com/Breezy-Reese/hotel/internal/validation"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

// --- Mock BookingService ---

type mockBookingService struct {
	bookRoomFn          func(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error)
	bookServiceFn       func(ctx context.Context, input service.BookServiceInput) (*models.ServiceBooking, error)
	listRoomFn          func(ctx context.Context) ([]models.RoomBooking, error)
	listServiceFn       func(ctx context.Context) ([]models.ServiceBooking, error)
	listGuestFn         func(ctx context.Context, email string) (*service.GuestBookings, error)
	listGuestsFn        func(ctx context.Context) ([]models.Guest, error)
	transitionRoomFn    func(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error)
	transitionServiceFn func(ctx context.Context, id uint, next models.BookingStatus) (*models.ServiceBooking, error)
}

func (m *mockBookingService) BookRoom(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error) {
	return m.bookRoomFn(ctx, input)
}
func (m *mockBookingService) BookService(ctx context.Context, input service.BookServiceInput) (*models.ServiceBooking, error) {
	return m.bookServiceFn(ctx, input)
}
func (m *mockBookingService) ListRoomBookings(ctx context.Context) ([]models.RoomBooking, error) {
	return m.listRoomFn(ctx)
}
func (m *mockBookingService) ListServiceBookings(ctx context.Context) ([]models.ServiceBooking, error) {
	return m.listServiceFn(ctx)
}
func (m *mockBookingService) ListGuestBookings(ctx context.Context, email string) (*service.GuestBookings, error) {
	return m.listGuestFn(ctx, email)
}
func (m *mockBookingService) ListGuests(ctx context.Context) ([]models.Guest, error) {
	return m.listGuestsFn(ctx)
}
func (m *mockBookingService) TransitionRoomBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error) {
	return m.transitionRoomFn(ctx, id, next)
}
func (m *mockBookingService) TransitionServiceBooking(ctx context.Context, id uint, next models.BookingStatus) (*models.ServiceBooking, error) {
	return m.transitionServiceFn(ctx, id, next)
}

func newTestContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validation.New()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

// --- Tests ---

func TestBookRoom_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		bookRoomFn: func(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error) {
			return &models.RoomBooking{
				ID:            1,
				Ref:           "ref-abc",
				RoomID:        input.RoomID,
				Checkin:       input.Stay.Checkin,
				Checkout:      input.Stay.Checkout,
				Status:        models.StatusPending,
				PaymentStatus: models.PaymentUnpaid,
				CreatedAt:     time.Now(),
				Room:          &models.Room{ID: input.RoomID, Name: "Deluxe 101", Price: 1500},
			}, nil
		},
	}

	body := `{"name":"Alice Smith","email":"alice@example.com","phone":"0812345678","checkin":"2025-09-01","checkout":"2025-09-05"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/rooms/1/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewBookingHandler(svc)
	err := h.BookRoom(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.RoomBookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "ref-abc", resp.Ref)
	assert.Equal(t, models.StatusPending, resp.Status)
	assert.Equal(t, "2025-09-01", resp.Checkin)
	assert.Equal(t, "2025-09-05", resp.Checkout)
	assert.Equal(t, 4, resp.Nights)
	assert.Equal(t, float64(6000), resp.TotalPrice)
}

func TestBookRoom_Handler_WhitespaceName(t *testing.T) {
	// passes the dto required tag, caught by the service
	svc := &mockBookingService{
		bookRoomFn: func(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error) {
			return nil, fmt.Errorf("%w: guest name is required", service.ErrValidation)
		},
	}

	body := `{"name":"   ","email":"alice@example.com","checkin":"2025-09-01","checkout":"2025-09-05"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/1/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewBookingHandler(svc)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestBookRoom_Handler_Unavailable(t *testing.T) {
	svc := &mockBookingService{
		bookRoomFn: func(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error) {
			return nil, service.ErrRoomUnavailable
		},
	}

	body := `{"name":"Alice Smith","email":"alice@example.com","checkin":"2025-09-04","checkout":"2025-09-06"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/1/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewBookingHandler(svc)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestBookRoom_Handler_RoomNotFound(t *testing.T) {
	svc := &mockBookingService{
		bookRoomFn: func(ctx context.Context, input service.BookRoomInput) (*models.RoomBooking, error) {
			return nil, service.ErrRoomNotFound
		},
	}

	body := `{"name":"Alice Smith","email":"alice@example.com","checkin":"2025-09-01","checkout":"2025-09-05"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/999/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewBookingHandler(svc)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestBookRoom_Handler_CheckoutBeforeCheckin(t *testing.T) {
	body := `{"name":"Alice Smith","email":"alice@example.com","checkin":"2025-09-05","checkout":"2025-09-01"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/1/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewBookingHandler(nil)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestBookRoom_Handler_MissingEmail(t *testing.T) {
	body := `{"name":"Alice Smith","checkin":"2025-09-01","checkout":"2025-09-05"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/1/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("1")

	h := NewBookingHandler(nil)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestBookRoom_Handler_InvalidRoomID(t *testing.T) {
	body := `{"name":"Alice Smith","email":"alice@example.com","checkin":"2025-09-01","checkout":"2025-09-05"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/rooms/abc/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	h := NewBookingHandler(nil)
	err := h.BookRoom(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestBookService_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		bookServiceFn: func(ctx context.Context, input service.BookServiceInput) (*models.ServiceBooking, error) {
			return &models.ServiceBooking{
				ID:            7,
				Ref:           "ref-svc",
				ServiceID:     input.ServiceID,
				BookingDate:   input.BookingDate,
				Status:        models.StatusPending,
				PaymentStatus: models.PaymentUnpaid,
			}, nil
		},
	}

	body := `{"name":"Bob Jones","email":"bob@example.com","booking_date":"2025-09-10"}`
	c, rec := newTestContext(http.MethodPost, "/api/v1/services/3/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("3")

	h := NewBookingHandler(svc)
	err := h.BookService(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	var resp dto.ServiceBookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, uint(3), resp.ServiceID)
	assert.Equal(t, models.StatusPending, resp.Status)
}

func TestBookService_Handler_ServiceNotFound(t *testing.T) {
	svc := &mockBookingService{
		bookServiceFn: func(ctx context.Context, input service.BookServiceInput) (*models.ServiceBooking, error) {
			return nil, service.ErrServiceNotFound
		},
	}

	body := `{"name":"Bob Jones","email":"bob@example.com","booking_date":"2025-09-10"}`
	c, _ := newTestContext(http.MethodPost, "/api/v1/services/999/bookings", body)
	c.SetParamNames("id")
	c.SetParamValues("999")

	h := NewBookingHandler(svc)
	err := h.BookService(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListGuestBookings_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listGuestFn: func(ctx context.Context, email string) (*service.GuestBookings, error) {
			return &service.GuestBookings{
				Guest: &models.Guest{ID: 1, Name: "Alice Smith", Email: email},
				RoomBookings: []models.RoomBooking{
					{ID: 1, Ref: "ref-1", RoomID: 2, Status: models.StatusConfirmed},
				},
				ServiceBookings: []models.ServiceBooking{},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/guests/alice@example.com/bookings", "")
	c.SetParamNames("email")
	c.SetParamValues("alice@example.com")

	h := NewBookingHandler(svc)
	err := h.ListGuestBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp dto.GuestBookingsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "alice@example.com", resp.Email)
	assert.Len(t, resp.RoomBookings, 1)
	assert.Empty(t, resp.ServiceBookings)
}

func TestListGuestBookings_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		listGuestFn: func(ctx context.Context, email string) (*service.GuestBookings, error) {
			return nil, service.ErrGuestNotFound
		},
	}

	c, _ := newTestContext(http.MethodGet, "/api/v1/guests/nobody@example.com/bookings", "")
	c.SetParamNames("email")
	c.SetParamValues("nobody@example.com")

	h := NewBookingHandler(svc)
	err := h.ListGuestBookings(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestListRoomBookings_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listRoomFn: func(ctx context.Context) ([]models.RoomBooking, error) {
			return []models.RoomBooking{
				{ID: 1, Ref: "ref-1", Status: models.StatusPending},
				{ID: 2, Ref: "ref-2", Status: models.StatusConfirmed},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/bookings", "")

	h := NewBookingHandler(svc)
	err := h.ListRoomBookings(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.RoomBookingResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestListGuests_Handler_Success(t *testing.T) {
	svc := &mockBookingService{
		listGuestsFn: func(ctx context.Context) ([]models.Guest, error) {
			return []models.Guest{
				{ID: 1, Name: "Alice Smith", Email: "alice@example.com"},
				{ID: 2, Name: "Bob Jones", Email: "bob@example.com"},
			}, nil
		},
	}

	c, rec := newTestContext(http.MethodGet, "/api/v1/admin/guests", "")

	h := NewBookingHandler(svc)
	err := h.ListGuests(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp []dto.GuestResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
	assert.Equal(t, "alice@example.com", resp[0].Email)
}

func TestUpdateRoomBookingStatus_Handler_Success(t *testing.T) {
	var gotID uint
	var gotStatus models.BookingStatus
	svc := &mockBookingService{
		transitionRoomFn: func(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error) {
			gotID, gotStatus = id, next
			return &models.RoomBooking{ID: id, Ref: "ref-1", Status: next}, nil
		},
	}

	body := `{"status":"cancelled"}`
	c, rec := newTestContext(http.MethodPatch, "/api/v1/admin/bookings/5/status", body)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewBookingHandler(svc)
	err := h.UpdateRoomBookingStatus(c)

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint(5), gotID)
	assert.Equal(t, models.StatusCancelled, gotStatus)
}

func TestUpdateRoomBookingStatus_Handler_InvalidTransition(t *testing.T) {
	svc := &mockBookingService{
		transitionRoomFn: func(ctx context.Context, id uint, next models.BookingStatus) (*models.RoomBooking, error) {
			return nil, service.ErrInvalidTransition
		},
	}

	body := `{"status":"pending"}`
	c, _ := newTestContext(http.MethodPatch, "/api/v1/admin/bookings/5/status", body)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewBookingHandler(svc)
	err := h.UpdateRoomBookingStatus(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusConflict, he.Code)
}

func TestUpdateRoomBookingStatus_Handler_UnknownStatus(t *testing.T) {
	body := `{"status":"teleported"}`
	c, _ := newTestContext(http.MethodPatch, "/api/v1/admin/bookings/5/status", body)
	c.SetParamNames("id")
	c.SetParamValues("5")

	h := NewBookingHandler(nil)
	err := h.UpdateRoomBookingStatus(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestUpdateServiceBookingStatus_Handler_NotFound(t *testing.T) {
	svc := &mockBookingService{
		transitionServiceFn: func(ctx context.Context, id uint, next models.BookingStatus) (*models.ServiceBooking, error) {
			return nil, service.ErrBookingNotFound
		},
	}

	body := `{"status":"cancelled"}`
	c, _ := newTestContext(http.MethodPatch, "/api/v1/admin/service-bookings/404/status", body)
	c.SetParamNames("id")
	c.SetParamValues("404")

	h := NewBookingHandler(svc)
	err := h.UpdateServiceBookingStatus(c)

	he, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Code)
}
