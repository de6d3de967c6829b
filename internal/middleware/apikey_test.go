package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAPIKeyMiddleware(t *testing.T) {
	suite.Run(t, new(APIKeyMiddlewareSuite))
}

type APIKeyMiddlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func (s *APIKeyMiddlewareSuite) SetupTest() {
	s.e = echo.New()
}

func (s *APIKeyMiddlewareSuite) okHandler() echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	}
}

func (s *APIKeyMiddlewareSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var response struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	return response.Error.Code
}

func (s *APIKeyMiddlewareSuite) TestRequireAPIKey_ValidKey() {
	handler := RequireAPIKey("secret-key")(s.okHandler())

	req := httptest.NewRequest(http.MethodPost, "/invoice/status", nil)
	req.Header.Set(APIKeyHeader, "secret-key")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)
}

func (s *APIKeyMiddlewareSuite) TestRequireAPIKey_MissingKey() {
	handler := RequireAPIKey("secret-key")(s.okHandler())

	req := httptest.NewRequest(http.MethodPost, "/invoice/status", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_001", s.errorCode(rec))
}

func (s *APIKeyMiddlewareSuite) TestRequireAPIKey_WrongKey() {
	handler := RequireAPIKey("secret-key")(s.okHandler())

	req := httptest.NewRequest(http.MethodPost, "/invoice/status", nil)
	req.Header.Set(APIKeyHeader, "not-the-key")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
	s.Equal("AUTH_002", s.errorCode(rec))
}

func (s *APIKeyMiddlewareSuite) TestRequireAPIKey_KeyIsCaseSensitive() {
	handler := RequireAPIKey("Secret-Key")(s.okHandler())

	req := httptest.NewRequest(http.MethodPost, "/invoice/status", nil)
	req.Header.Set(APIKeyHeader, "secret-key")
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := handler(c)
	s.NoError(err)
	s.Equal(http.StatusForbidden, rec.Code)
}
