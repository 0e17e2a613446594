package handler_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/gateway/internal/handler"
	"github.com/shareit-lab/shareit-service/gateway/internal/service/shareit"
	"github.com/shareit-lab/shareit-service/pkg/circuit_breaker"
	"github.com/shareit-lab/shareit-service/pkg/validate"

	client_mocks "github.com/shareit-lab/shareit-service/gateway/internal/handler/mocks"
)

func newTestGateway(t *testing.T) (*echo.Echo, *client_mocks.MockShareItClient) {
	t.Helper()
	c := gomock.NewController(t)
	t.Cleanup(c.Finish)
	client := client_mocks.NewMockShareItClient(c)

	e := echo.New()
	e.Validator = validate.NewCustomValidator()
	return e, client
}

func TestGateway_CreateBooking(t *testing.T) {
	t.Parallel()

	var (
		start = time.Now().Add(24 * time.Hour).UTC().Format(time.RFC3339)
		end   = time.Now().Add(48 * time.Hour).UTC().Format(time.RFC3339)
	)

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *client_mocks.MockShareItClient)

	var tests = []struct {
		name         string
		mockBehavior mockBehavior
		callerID     string
		body         string
		response     response
	}{
		{
			name: "ok. relayed verbatim",
			mockBehavior: func(r *client_mocks.MockShareItClient) {
				r.EXPECT().
					Forward(gomock.Any(), gomock.Any()).
					Return([]byte(`{"id":1,"status":"WAITING"}`), http.StatusOK, nil)
			},
			callerID: "3",
			body:     fmt.Sprintf(`{"itemId":2,"start":%q,"end":%q}`, start, end),
			response: response{
				expectedCode: http.StatusOK,
				expectedBody: `{"id":1,"status":"WAITING"}`,
			},
		},
		{
			name:         "err. missing user header",
			mockBehavior: func(r *client_mocks.MockShareItClient) {},
			callerID:     "",
			body:         fmt.Sprintf(`{"itemId":2,"start":%q,"end":%q}`, start, end),
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"missing X-Sharer-User-Id header"}`,
			},
		},
		{
			name:         "err. start after end",
			mockBehavior: func(r *client_mocks.MockShareItClient) {},
			callerID:     "3",
			body:         fmt.Sprintf(`{"itemId":2,"start":%q,"end":%q}`, end, start),
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start must precede end"}`,
			},
		},
		{
			name:         "err. start in the past",
			mockBehavior: func(r *client_mocks.MockShareItClient) {},
			callerID:     "3",
			body:         fmt.Sprintf(`{"itemId":2,"start":"2020-01-01T00:00:00Z","end":%q}`, end),
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"message":"start must not be in the past"}`,
			},
		},
		{
			name: "err. core unreachable",
			mockBehavior: func(r *client_mocks.MockShareItClient) {
				r.EXPECT().
					Forward(gomock.Any(), gomock.Any()).
					Return(nil, 0, errors.New("connection refused"))
			},
			callerID: "3",
			body:     fmt.Sprintf(`{"itemId":2,"start":%q,"end":%q}`, start, end),
			response: response{
				expectedCode: http.StatusBadGateway,
				expectedBody: `{"message":"connection refused"}`,
			},
		},
		{
			name: "err. breaker open",
			mockBehavior: func(r *client_mocks.MockShareItClient) {
				r.EXPECT().
					Forward(gomock.Any(), gomock.Any()).
					Return(nil, 0, circuit_breaker.ErrOpenCB)
			},
			callerID: "3",
			body:     fmt.Sprintf(`{"itemId":2,"start":%q,"end":%q}`, start, end),
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"shareit service unavailable"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			e, client := newTestGateway(t)
			h := handler.New(client, zap.NewExample())
			e.POST("/bookings", h.CreateBooking)

			r := httptest.NewRequest(http.MethodPost, "/bookings", strings.NewReader(tt.body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.callerID != "" {
				r.Header.Set(shareit.UserIDHeader, tt.callerID)
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(client)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestGateway_DecideBooking(t *testing.T) {
	t.Parallel()

	t.Run("approved flag forwarded with caller identity", func(t *testing.T) {
		t.Parallel()
		e, client := newTestGateway(t)
		h := handler.New(client, zap.NewExample())
		e.PATCH("/bookings/:id", h.DecideBooking)

		client.EXPECT().
			Forward(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ interface{}, req shareit.ForwardRequest) ([]byte, int, error) {
				require.Equal(t, http.MethodPatch, req.Method)
				require.Equal(t, "/bookings/1", req.Path)
				require.Equal(t, "7", req.CallerID)
				require.Equal(t, "true", req.Query.Get("approved"))
				return []byte(`{"id":1,"status":"APPROVED"}`), http.StatusOK, nil
			})

		r := httptest.NewRequest(http.MethodPatch, "/bookings/1?approved=true", http.NoBody)
		r.Header.Set(shareit.UserIDHeader, "7")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusOK, w.Code)
		require.Equal(t, `{"id":1,"status":"APPROVED"}`, strings.Trim(w.Body.String(), "\n"))
	})

	t.Run("bad approved param rejected at the edge", func(t *testing.T) {
		t.Parallel()
		e, client := newTestGateway(t)
		h := handler.New(client, zap.NewExample())
		e.PATCH("/bookings/:id", h.DecideBooking)

		r := httptest.NewRequest(http.MethodPatch, "/bookings/1?approved=maybe", http.NoBody)
		r.Header.Set(shareit.UserIDHeader, "7")
		w := httptest.NewRecorder()
		e.ServeHTTP(w, r)

		require.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestGateway_ErrorStatusRelayed(t *testing.T) {
	t.Parallel()

	e, client := newTestGateway(t)
	h := handler.New(client, zap.NewExample())
	e.GET("/bookings/:id", h.GetBooking)

	client.EXPECT().
		Forward(gomock.Any(), gomock.Any()).
		Return([]byte(`{"message":"booking not found"}`), http.StatusNotFound, nil)

	r := httptest.NewRequest(http.MethodGet, "/bookings/99", http.NoBody)
	r.Header.Set(shareit.UserIDHeader, "3")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Equal(t, `{"message":"booking not found"}`, strings.Trim(w.Body.String(), "\n"))
}
