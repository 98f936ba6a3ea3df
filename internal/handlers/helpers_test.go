package handlers

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const testTraceID = "trace-123"

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newRequest builds a context for a handler call. A string body is sent as
// is; anything else is JSON encoded.
func newRequest(e *echo.Echo, method, target string, body interface{}) (echo.Context, *httptest.ResponseRecorder) {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	case []byte:
		reader = bytes.NewReader(b)
	default:
		encoded, _ := json.Marshal(b)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, testTraceID)
	return c, rec
}

func authenticate(c echo.Context, userID, tenantID uuid.UUID) {
	c.Set(UserIDContextKey, userID)
	c.Set(TenantIDContextKey, tenantID)
}

func decodeError(rec *httptest.ResponseRecorder) ErrorResponse {
	var response ErrorResponse
	_ = json.NewDecoder(strings.NewReader(rec.Body.String())).Decode(&response)
	return response
}
