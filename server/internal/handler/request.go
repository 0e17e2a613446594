package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (h *Handler) CreateRequest(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	view, err := h.svc.CreateRequest(c.Request().Context(), caller, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) GetOwnRequests(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	views, err := h.svc.GetOwnRequests(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetOtherRequests(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var (
		from = 0
		size = 10
	)
	if fromParam := c.QueryParam("from"); fromParam != "" {
		if from, err = strconv.Atoi(fromParam); err != nil || from < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "from is invalid")
		}
	}
	if sizeParam := c.QueryParam("size"); sizeParam != "" {
		if size, err = strconv.Atoi(sizeParam); err != nil || size <= 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "size is invalid")
		}
	}
	views, err := h.svc.GetOtherRequests(c.Request().Context(), caller, from, size)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) GetRequest(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	requestID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.svc.GetRequest(c.Request().Context(), caller, requestID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}
