package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shareit-lab/shareit-service/server/internal/model"
)

func (h *Handler) CreateItem(c echo.Context) error {
	ownerID, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	item, err := h.svc.CreateItem(c.Request().Context(), ownerID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) UpdateItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	item, err := h.svc.UpdateItem(c.Request().Context(), caller, itemID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, item)
}

func (h *Handler) GetItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	view, err := h.svc.GetItem(c.Request().Context(), caller, itemID)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, view)
}

func (h *Handler) ListItems(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	views, err := h.svc.ListItemsByOwner(c.Request().Context(), caller)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, views)
}

func (h *Handler) SearchItems(c echo.Context) error {
	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("text"))
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *Handler) AddComment(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	itemID, err := pathID(c, "id")
	if err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := c.Validate(req); err != nil {
		return err
	}
	comment, err := h.svc.AddComment(c.Request().Context(), caller, itemID, req)
	if err != nil {
		return httpError(err)
	}
	return c.JSON(http.StatusOK, comment)
}
