package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/nftcard/base/ctx"
)

type middlewareSuite struct {
	suite.Suite
	e *echo.Echo
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(middlewareSuite))
}

func (s *middlewareSuite) SetupTest() {
	s.e = echo.New()
	m := InitMiddleware()
	s.e.Use(m.ResponseLogger())
	s.e.Use(m.AddContext())
	s.e.GET("/c/:contract", func(c echo.Context) error {
		_, ok := c.Get("ctx").(ctx.Ctx)
		s.True(ok)
		return c.String(http.StatusOK, "ok")
	}, IsValidAddress("contract"))
}

func (s *middlewareSuite) do(path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *middlewareSuite) TestValidAddress() {
	rec := s.do("/c/0x939ae6A4C8dfDBB1f7085189574F0A938013952A")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("ok", rec.Body.String())
}

func (s *middlewareSuite) TestInvalidAddress() {
	rec := s.do("/c/0x000")
	s.Equal(http.StatusBadRequest, rec.Code)
	s.JSONEq(`{"data":"Invalid address","status":"fail"}`, rec.Body.String())
}

func (s *middlewareSuite) TestNotFoundRouteIsLogged() {
	rec := s.do("/missing")
	s.Equal(http.StatusNotFound, rec.Code)
}
