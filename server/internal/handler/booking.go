package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (h *Handler) CreateBooking(c echo.Context) error {
	bookerID, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	booking, err := h.svc.CreateBooking(c.Request().Context(), bookerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) DecideBooking(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}
	booking, err := h.svc.DecideBooking(c.Request().Context(), ownerID, bookingID, approved)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) GetBooking(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	bookingID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	booking, err := h.svc.GetBooking(c.Request().Context(), caller, bookingID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, booking)
}

func (h *Handler) ListBookingsByBooker(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	bookings, err := h.svc.ListBookingsByBooker(c.Request().Context(), caller, c.QueryParam("state"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	bookings, err := h.svc.ListBookingsByOwner(c.Request().Context(), caller, c.QueryParam("state"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, bookings)
}
