package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/service/cache/provider"
	"github.com/x-xyz/traitkit/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite

	cache provider.Provider
	e     *echo.Echo
	calls int
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.cache = primitive.NewPrimitive("test", 1)
	s.calls = 0
	s.e = echo.New()
	s.e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			c.Set("ctx", ctx.Background())
			return next(c)
		}
	})
	s.e.Use(CacheHttp(s.cache, 30*time.Second))
	s.e.GET("/hello", func(c echo.Context) error {
		s.calls++
		return c.String(http.StatusOK, "Hello, World")
	})
	s.e.GET("/fail", func(c echo.Context) error {
		s.calls++
		return c.String(http.StatusBadRequest, "no")
	})
	s.e.GET("/accepted", func(c echo.Context) error {
		s.calls++
		return c.JSON(http.StatusAccepted, map[string]string{"queued": "yes"})
	})
	s.e.POST("/hello", func(c echo.Context) error {
		s.calls++
		return c.String(http.StatusOK, "posted")
	})
}

func TestCacheMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) serve(method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func (s *cacheMiddlewareSuite) TestCacheHit() {
	rec := s.serve(http.MethodGet, "/hello?b=2&a=1")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("MISS", rec.Header().Get(HeaderXCache))

	// same params in another order share the entry
	rec = s.serve(http.MethodGet, "/hello?a=1&b=2")
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Hello, World", rec.Body.String())
	s.Equal("HIT", rec.Header().Get(HeaderXCache))
	s.Equal(echo.MIMETextPlainCharsetUTF8, rec.Header().Get(echo.HeaderContentType))
	s.Equal(1, s.calls)
}

func (s *cacheMiddlewareSuite) TestErrorNotCached() {
	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/fail").Code)
	s.Equal(http.StatusBadRequest, s.serve(http.MethodGet, "/fail").Code)
	s.Equal(2, s.calls)
}

func (s *cacheMiddlewareSuite) TestPostBypass() {
	s.Equal("posted", s.serve(http.MethodPost, "/hello").Body.String())
	s.Equal("posted", s.serve(http.MethodPost, "/hello").Body.String())
	s.Equal(2, s.calls)
}

func (s *cacheMiddlewareSuite) TestCacheHitReplaysStatus() {
	rec := s.serve(http.MethodGet, "/accepted")
	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("MISS", rec.Header().Get(HeaderXCache))

	rec = s.serve(http.MethodGet, "/accepted")
	s.Equal(http.StatusAccepted, rec.Code)
	s.Equal("HIT", rec.Header().Get(HeaderXCache))
	s.JSONEq(`{"queued":"yes"}`, rec.Body.String())
	s.Equal(1, s.calls)
}
