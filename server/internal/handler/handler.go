package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/server/internal/errs"
	md "github.com/shareit-lab/shareit-service/pkg/middleware"
	"github.com/shareit-lab/shareit-service/pkg/validate"
)

const UserIDHeader = "X-Sharer-User-Id"

type Handler struct {
	svc ShareItService
	log *zap.Logger
}

func New(svc ShareItService, log *zap.Logger) *Handler {
	return &Handler{
		svc: svc,
		log: log,
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

// callerID reads the acting user from the X-Sharer-User-Id header.
func callerID(c echo.Context) (int64, error) {
	v := c.Request().Header.Get(UserIDHeader)
	if v == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing "+UserIDHeader+" header")
	}
	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}
	return id, nil
}

func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, name+" is invalid")
	}
	return id, nil
}

// httpError maps domain sentinels onto status codes; anything
// unrecognized is a 500.
func httpError(err error) *echo.HTTPError {
	switch {
	case errors.Is(err, errs.ErrUserNotFound),
		errors.Is(err, errs.ErrItemNotFound),
		errors.Is(err, errs.ErrBookingNotFound),
		errors.Is(err, errs.ErrRequestNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, errs.ErrAccessDenied),
		errors.Is(err, errs.ErrOwnBooking):
		return echo.NewHTTPError(http.StatusForbidden, err.Error())
	case errors.Is(err, errs.ErrItemUnavailable),
		errors.Is(err, errs.ErrUnknownState),
		errors.Is(err, errs.ErrNoPastBooking):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, errs.ErrEmailExists),
		errors.Is(err, errs.ErrAlreadyDecided),
		errors.Is(err, errs.ErrBookingOverlap):
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	default:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
}
