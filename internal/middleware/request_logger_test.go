package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type RequestLoggerTestSuite struct {
	suite.Suite
	echo *echo.Echo
	buf  *bytes.Buffer
}

func (s *RequestLoggerTestSuite) SetupTest() {
	s.buf = &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(s.buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s.echo = echo.New()
	s.echo.Use(RequestID(), RequestLogger(logger))
	s.echo.GET("/ok", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	s.echo.GET("/missing", func(c echo.Context) error {
		return echo.NewHTTPError(http.StatusNotFound, "gone")
	})
}

func TestRequestLoggerTestSuite(t *testing.T) {
	suite.Run(t, new(RequestLoggerTestSuite))
}

func (s *RequestLoggerTestSuite) lastEntry() map[string]any {
	lines := bytes.Split(bytes.TrimSpace(s.buf.Bytes()), []byte("\n"))
	s.Require().NotEmpty(lines)
	var entry map[string]any
	s.Require().NoError(json.Unmarshal(lines[len(lines)-1], &entry))
	return entry
}

func (s *RequestLoggerTestSuite) TestLogsSuccessfulRequest() {
	req := httptest.NewRequest(http.MethodGet, "/ok", nil)
	req.Header.Set(TraceIDHeader, "trace-log-1")
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	entry := s.lastEntry()
	s.Equal("INFO", entry["level"])
	s.Equal("request completed", entry["msg"])
	s.Equal("trace-log-1", entry["trace_id"])
	s.Equal("GET", entry["method"])
	s.Equal("/ok", entry["path"])
	s.Equal(float64(http.StatusOK), entry["status"])
	s.Contains(entry, "latency_ms")
}

func (s *RequestLoggerTestSuite) TestLogsClientErrorAsWarn() {
	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rec := httptest.NewRecorder()

	s.echo.ServeHTTP(rec, req)

	entry := s.lastEntry()
	s.Equal("WARN", entry["level"])
	s.Equal(float64(http.StatusNotFound), entry["status"])
	s.Contains(entry["error"], "gone")
}
