package handler

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/Breezy-Reese/hotel/internal/dto"
	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(api, admin *echo.Group) {
	api.POST("/rooms/:id/bookings", h.BookRoom)
	api.POST("/services/:id/bookings", h.BookService)
	api.GET("/guests/:email/bookings", h.ListGuestBookings)

	admin.GET("/bookings", h.ListRoomBookings)
	admin.GET("/service-bookings", h.ListServiceBookings)
	admin.GET("/guests", h.ListGuests)
	admin.PATCH("/bookings/:id/status", h.UpdateRoomBookingStatus)
	admin.PATCH("/service-bookings/:id/status", h.UpdateServiceBookingStatus)
}

func (h *BookingHandler) BookRoom(c echo.Context) error {
	roomID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.BookRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	stay, err := models.ParseStayRange(req.Checkin, req.Checkout)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	booking, err := h.svc.BookRoom(c.Request().Context(), service.BookRoomInput{
		RoomID: uint(roomID),
		Guest: service.GuestDetails{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		Stay: stay,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrRoomNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrRoomUnavailable):
			return echo.NewHTTPError(http.StatusConflict, err.Error())
		case errors.Is(err, models.ErrInvalidStay), errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToRoomBookingResponse(booking))
}

func (h *BookingHandler) BookService(c echo.Context) error {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}

	var req dto.BookServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	bookingDate, err := parseBookingDate(req.BookingDate)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid booking_date")
	}

	booking, err := h.svc.BookService(c.Request().Context(), service.BookServiceInput{
		ServiceID: uint(serviceID),
		Guest: service.GuestDetails{
			Name:  req.Name,
			Email: req.Email,
			Phone: req.Phone,
		},
		BookingDate: bookingDate,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrServiceNotFound):
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		case errors.Is(err, service.ErrValidation):
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		default:
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(http.StatusCreated, dto.ToServiceBookingResponse(booking))
}

func (h *BookingHandler) ListGuestBookings(c echo.Context) error {
	email := c.Param("email")

	bookings, err := h.svc.ListGuestBookings(c.Request().Context(), email)
	if err != nil {
		if errors.Is(err, service.ErrGuestNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "guest not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToGuestBookingsResponse(bookings))
}

func (h *BookingHandler) ListGuests(c echo.Context) error {
	guests, err := h.svc.ListGuests(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.GuestResponse, len(guests))
	for i := range guests {
		resp[i] = dto.ToGuestResponse(&guests[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListRoomBookings(c echo.Context) error {
	bookings, err := h.svc.ListRoomBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomBookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToRoomBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) ListServiceBookings(c echo.Context) error {
	bookings, err := h.svc.ListServiceBookings(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ServiceBookingResponse, len(bookings))
	for i := range bookings {
		resp[i] = dto.ToServiceBookingResponse(&bookings[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *BookingHandler) UpdateRoomBookingStatus(c echo.Context) error {
	id, status, err := bindStatusUpdate(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.TransitionRoomBooking(c.Request().Context(), id, status)
	if err != nil {
		return mapTransitionError(err)
	}
	return c.JSON(http.StatusOK, dto.ToRoomBookingResponse(booking))
}

func (h *BookingHandler) UpdateServiceBookingStatus(c echo.Context) error {
	id, status, err := bindStatusUpdate(c)
	if err != nil {
		return err
	}

	booking, err := h.svc.TransitionServiceBooking(c.Request().Context(), id, status)
	if err != nil {
		return mapTransitionError(err)
	}
	return c.JSON(http.StatusOK, dto.ToServiceBookingResponse(booking))
}

func bindStatusUpdate(c echo.Context) (uint, models.BookingStatus, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, "", echo.NewHTTPError(http.StatusBadRequest, "invalid booking id")
	}

	var req dto.UpdateBookingStatusRequest
	if err := c.Bind(&req); err != nil {
		return 0, "", echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return 0, "", err
	}
	return uint(id), models.BookingStatus(req.Status), nil
}

func mapTransitionError(err error) error {
	switch {
	case errors.Is(err, service.ErrBookingNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrInvalidTransition):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}

// parseBookingDate accepts either a bare day or a full timestamp.
func parseBookingDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse(models.DateLayout, value)
}
