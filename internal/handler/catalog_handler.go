package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Breezy-Reese/hotel/internal/dto"
	"github.com/Breezy-Reese/hotel/internal/models"
	"github.com/Breezy-Reese/hotel/internal/service"
	"github.com/labstack/echo/v4"
)

type CatalogHandler struct {
	svc service.CatalogService
}

func NewCatalogHandler(svc service.CatalogService) *CatalogHandler {
	return &CatalogHandler{svc: svc}
}

func (h *CatalogHandler) RegisterRoutes(api, admin *echo.Group) {
	api.GET("/rooms", h.ListRooms)
	api.GET("/services", h.ListServices)

	admin.GET("/rooms", h.ListRooms)
	admin.POST("/rooms", h.CreateRoom)
	admin.PUT("/rooms/:id", h.UpdateRoom)
	admin.GET("/services", h.ListServices)
	admin.POST("/services", h.CreateService)
	admin.PUT("/services/:id", h.UpdateService)
}

func (h *CatalogHandler) ListRooms(c echo.Context) error {
	var status *models.RoomStatus
	if s := c.QueryParam("status"); s != "" {
		rs := models.RoomStatus(s)
		if rs != models.RoomAvailable && rs != models.RoomBooked {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid status filter")
		}
		status = &rs
	}

	listings, err := h.svc.ListRooms(c.Request().Context(), status)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.RoomResponse, len(listings))
	for i, l := range listings {
		resp[i] = dto.ToRoomResponse(l)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateRoom(c echo.Context) error {
	var req dto.CreateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room := &models.Room{Name: req.Name, Price: req.Price}
	if err := h.svc.CreateRoom(c.Request().Context(), room); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToRoomResponse(service.RoomListing{
		Room:   *room,
		Status: models.RoomAvailable,
	}))
}

func (h *CatalogHandler) UpdateRoom(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid room id")
	}

	var req dto.UpdateRoomRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	room, err := h.svc.UpdateRoom(c.Request().Context(), uint(id), req.Name, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrRoomNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, room)
}

func (h *CatalogHandler) ListServices(c echo.Context) error {
	var category *string
	if cat := c.QueryParam("category"); cat != "" {
		category = &cat
	}

	services, err := h.svc.ListServices(c.Request().Context(), category)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	resp := make([]dto.ServiceResponse, len(services))
	for i := range services {
		resp[i] = dto.ToServiceResponse(&services[i])
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *CatalogHandler) CreateService(c echo.Context) error {
	var req dto.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc := &models.Service{Name: req.Name, Category: req.Category, Price: req.Price}
	if err := h.svc.CreateService(c.Request().Context(), svc); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusCreated, dto.ToServiceResponse(svc))
}

func (h *CatalogHandler) UpdateService(c echo.Context) error {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid service id")
	}

	var req dto.UpdateServiceRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	svc, err := h.svc.UpdateService(c.Request().Context(), uint(id), req.Name, req.Category, req.Price)
	if err != nil {
		if errors.Is(err, service.ErrServiceNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, dto.ToServiceResponse(svc))
}
