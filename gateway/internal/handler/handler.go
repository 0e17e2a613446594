package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/gateway/internal/errs"
	"github.com/shareit-lab/shareit-service/gateway/internal/model"
	"github.com/shareit-lab/shareit-service/gateway/internal/service/shareit"
	"github.com/shareit-lab/shareit-service/pkg/circuit_breaker"
	md "github.com/shareit-lab/shareit-service/pkg/middleware"
	"github.com/shareit-lab/shareit-service/pkg/validate"
)

type Handler struct {
	client ShareItClient
	log    *zap.Logger
}

func New(client ShareItClient, log *zap.Logger) *Handler {
	return &Handler{
		client: client,
		log:    log,
	}
}

func (h *Handler) NewRouter() *echo.Echo {
	e := echo.New()
	const (
		baseRPS = 10
		apiRPS  = 100
	)
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		StackSize: 4 << 10, // 4 KB
	}))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{http.MethodGet, http.MethodOptions, http.MethodHead, http.MethodPut, http.MethodPatch, http.MethodPost, http.MethodDelete},
		AllowCredentials: true,
	}))

	base := e.Group("", md.NewRateLimiter(baseRPS))
	base.GET("/manage/health", h.Health)

	e.Validator = validate.NewCustomValidator()
	api := e.Group("",
		middleware.RequestLoggerWithConfig(md.RequestLoggerConfig()),
		middleware.RequestID(),
		md.NewRateLimiter(apiRPS),
	)

	api.POST("/users", h.CreateUser)
	api.PATCH("/users/:id", h.UpdateUser)
	api.GET("/users/:id", h.GetUser)
	api.GET("/users", h.ListUsers)
	api.DELETE("/users/:id", h.DeleteUser)

	api.POST("/items", h.CreateItem)
	api.PATCH("/items/:id", h.UpdateItem)
	api.GET("/items/:id", h.GetItem)
	api.GET("/items", h.ListItems)
	api.GET("/items/search", h.SearchItems)
	api.POST("/items/:id/comment", h.AddComment)

	api.POST("/bookings", h.CreateBooking)
	api.PATCH("/bookings/:id", h.DecideBooking)
	api.GET("/bookings/:id", h.GetBooking)
	api.GET("/bookings", h.ListBookingsByBooker)
	api.GET("/bookings/owner", h.ListBookingsByOwner)

	api.POST("/requests", h.CreateRequest)
	api.GET("/requests", h.GetOwnRequests)
	api.GET("/requests/all", h.GetOtherRequests)
	api.GET("/requests/:id", h.GetRequest)

	return e
}

func (h *Handler) Health(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func callerID(c echo.Context) (string, error) {
	v := c.Request().Header.Get(shareit.UserIDHeader)
	if v == "" {
		return "", echo.NewHTTPError(http.StatusBadRequest, errs.ErrMissingUserID.Error())
	}
	if _, err := strconv.ParseInt(v, 10, 64); err != nil {
		return "", echo.NewHTTPError(http.StatusBadRequest, "invalid "+shareit.UserIDHeader+" header")
	}
	return v, nil
}

// relay forwards and hands the core's response back verbatim.
func (h *Handler) relay(c echo.Context, req shareit.ForwardRequest) error {
	body, status, err := h.client.Forward(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, circuit_breaker.ErrOpenCB) {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "shareit service unavailable")
		}
		return echo.NewHTTPError(http.StatusBadGateway, err.Error())
	}
	if len(body) == 0 {
		return c.NoContent(status)
	}
	return c.Blob(status, echo.MIMEApplicationJSON, body)
}

func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.Validate(req)
}

func (h *Handler) CreateUser(c echo.Context) error {
	var req model.CreateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPost, Path: "/users", Body: req,
	})
}

func (h *Handler) UpdateUser(c echo.Context) error {
	var req model.UpdateUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPatch, Path: "/users/" + c.Param("id"), Body: req,
	})
}

func (h *Handler) GetUser(c echo.Context) error {
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/users/" + c.Param("id"),
	})
}

func (h *Handler) ListUsers(c echo.Context) error {
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/users",
	})
}

func (h *Handler) DeleteUser(c echo.Context) error {
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodDelete, Path: "/users/" + c.Param("id"),
	})
}

func (h *Handler) CreateItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPost, Path: "/items", CallerID: caller, Body: req,
	})
}

func (h *Handler) UpdateItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.UpdateItemRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPatch, Path: "/items/" + c.Param("id"), CallerID: caller, Body: req,
	})
}

func (h *Handler) GetItem(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/items/" + c.Param("id"), CallerID: caller,
	})
}

func (h *Handler) ListItems(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/items", CallerID: caller,
	})
}

func (h *Handler) SearchItems(c echo.Context) error {
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/items/search", Query: c.QueryParams(),
	})
}

func (h *Handler) AddComment(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateCommentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPost, Path: "/items/" + c.Param("id") + "/comment", CallerID: caller, Body: req,
	})
}

func (h *Handler) CreateBooking(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateBookingRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if !req.Start.Before(req.End) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrStartAfterEnd.Error())
	}
	if req.Start.Before(time.Now()) {
		return echo.NewHTTPError(http.StatusBadRequest, errs.ErrStartInPast.Error())
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPost, Path: "/bookings", CallerID: caller, Body: req,
	})
}

func (h *Handler) DecideBooking(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	if _, err := strconv.ParseBool(c.QueryParam("approved")); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved is invalid")
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPatch, Path: "/bookings/" + c.Param("id"), Query: c.QueryParams(), CallerID: caller,
	})
}

func (h *Handler) GetBooking(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/bookings/" + c.Param("id"), CallerID: caller,
	})
}

func (h *Handler) ListBookingsByBooker(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/bookings", Query: c.QueryParams(), CallerID: caller,
	})
}

func (h *Handler) ListBookingsByOwner(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/bookings/owner", Query: c.QueryParams(), CallerID: caller,
	})
}

func (h *Handler) CreateRequest(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	var req model.CreateItemRequestRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodPost, Path: "/requests", CallerID: caller, Body: req,
	})
}

func (h *Handler) GetOwnRequests(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/requests", CallerID: caller,
	})
}

func (h *Handler) GetOtherRequests(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/requests/all", Query: c.QueryParams(), CallerID: caller,
	})
}

func (h *Handler) GetRequest(c echo.Context) error {
	caller, err := callerID(c)
	if err != nil {
		return err
	}
	return h.relay(c, shareit.ForwardRequest{
		Method: http.MethodGet, Path: "/requests/" + c.Param("id"), CallerID: caller,
	})
}
