package shareit

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/shareit-lab/shareit-service/gateway/config"
	"github.com/shareit-lab/shareit-service/pkg/circuit_breaker"
)

const (
	UserIDHeader    = "X-Sharer-User-Id"
	RequestIDHeader = "X-Request-Id"
)

// ForwardRequest describes one call relayed to the core service.
type ForwardRequest struct {
	Method   string
	Path     string
	Query    url.Values
	CallerID string
	Body     any
}

type Service struct {
	log    *zap.Logger
	client *http.Client
	cfg    config.ShareItHTTPServer
	cb     circuit_breaker.CircuitBreaker
}

func NewService(log *zap.Logger, cfg *config.Config) *Service {
	return &Service{
		log:    log.Named("shareit-client"),
		client: &http.Client{Timeout: time.Minute},
		cfg:    cfg.ShareIt,
		cb:     circuit_breaker.New(20, 10*time.Second, 0.5, 5),
	}
}

// Forward relays the request to the core service and returns the raw
// response body and status code verbatim. Calls run through the circuit
// breaker; circuit_breaker.ErrOpenCB means the core was not called.
func (s *Service) Forward(ctx context.Context, req ForwardRequest) ([]byte, int, error) {
	u := url.URL{
		Scheme:   "http",
		Host:     net.JoinHostPort(s.cfg.Host, s.cfg.Port),
		Path:     req.Path,
		RawQuery: req.Query.Encode(),
	}

	var body io.Reader = http.NoBody
	if req.Body != nil {
		b := bytes.NewBuffer(nil)
		if err := json.NewEncoder(b).Encode(req.Body); err != nil {
			return nil, http.StatusBadRequest, err
		}
		body = b
	}

	r, err := http.NewRequestWithContext(ctx, req.Method, u.String(), body)
	if err != nil {
		return nil, http.StatusBadRequest, err
	}
	r.Header.Set("Content-Type", echo.MIMEApplicationJSONCharsetUTF8)
	r.Header.Set(RequestIDHeader, uuid.NewString())
	if req.CallerID != "" {
		r.Header.Set(UserIDHeader, req.CallerID)
	}

	var (
		respBody []byte
		status   int
	)
	err = s.cb.Call(func() error {
		resp, err := s.client.Do(r)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		respBody, err = io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		status = resp.StatusCode
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("shareit responded %d", status)
		}
		return nil
	})
	if err != nil {
		s.log.Warn("forward",
			zap.String("method", req.Method),
			zap.String("path", req.Path),
			zap.Error(err))
		if status == 0 {
			return nil, 0, err
		}
	}
	return respBody, status, nil
}
