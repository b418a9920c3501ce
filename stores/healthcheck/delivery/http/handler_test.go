package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/airdropper/base/ctx"
)

type stubUsecase struct {
	err error
}

func (s stubUsecase) Check(context ctx.Ctx) error {
	return s.err
}

type handlerSuite struct {
	suite.Suite
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) serve(us stubUsecase) *httptest.ResponseRecorder {
	e := echo.New()
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	New(e, us)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	return rec
}

func (s *handlerSuite) TestHealthy() {
	rec := s.serve(stubUsecase{})
	s.Equal(http.StatusOK, rec.Code)
	s.JSONEq(`{"healthy":"ok"}`, rec.Body.String())
}

func (s *handlerSuite) TestUnhealthy() {
	rec := s.serve(stubUsecase{err: echo.ErrServiceUnavailable})
	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Contains(rec.Body.String(), "message")
}
