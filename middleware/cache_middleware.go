package middleware

import (
	"bufio"
	"bytes"
	"hash/fnv"
	"io"
	"net"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/service/cache"
	"github.com/x-xyz/traitkit/service/cache/provider"
)

const (
	cacheMiddlewarePfx = "httpCacheMiddleware"

	// HeaderXCache reports whether the response was served from cache
	HeaderXCache = "X-Cache"
)

// Response is the cached response data structure.
type Response struct {
	// Value is the cached response value.
	Value []byte

	// Header is the cached response header.
	Header http.Header

	// StatusCode is the cached response status, 200 when unset.
	StatusCode int
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

func (w *bodyDumpResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	return w.ResponseWriter.(http.Hijacker).Hijack()
}

func sortURLParams(URL *url.URL) {
	params := URL.Query()
	for _, param := range params {
		sort.Strings(param)
	}
	URL.RawQuery = params.Encode()
}

func generateKey(URL string) string {
	hash := fnv.New64a()
	hash.Write([]byte(URL))

	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves repeated GET requests from p for ttl. Only responses
// below 400 are stored; a hit replays the stored status, headers and body
// without calling the handler.
func CacheHttp(p provider.Provider, ttl time.Duration) echo.MiddlewareFunc {
	cacheService := cache.New(cache.ServiceConfig{
		Ttl:   ttl,
		Pfx:   cacheMiddlewarePfx,
		Cache: p,
	})

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Get("ctx").(ctx.Ctx)

			sortURLParams(c.Request().URL)
			key := generateKey(c.Request().URL.String())

			response := Response{}
			err := cacheService.Get(ctx, key, &response)
			if err == nil {
				for k, v := range response.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().Header().Set(HeaderXCache, "HIT")
				status := response.StatusCode
				if status == 0 {
					status = http.StatusOK
				}
				c.Response().WriteHeader(status)
				_, err := c.Response().Write(response.Value)
				return err
			} else if err != cache.ErrNotFound {
				ctx.WithFields(log.Fields{
					"err": err,
				}).Error("failed to cacheService.Get")
			}

			c.Response().Header().Set(HeaderXCache, "MISS")
			resBody := new(bytes.Buffer)
			mw := io.MultiWriter(c.Response().Writer, resBody)
			writer := &bodyDumpResponseWriter{statusCode: http.StatusOK, Writer: mw, ResponseWriter: c.Response().Writer}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode < http.StatusBadRequest {
				header := writer.Header().Clone()
				header.Del(HeaderXCache)
				header.Del(echo.HeaderXRequestID)
				if err := cacheService.Set(ctx, key, Response{
					Value:      resBody.Bytes(),
					Header:     header,
					StatusCode: writer.statusCode,
				}); err != nil {
					ctx.WithFields(log.Fields{
						"err": err,
						"uri": c.Request().URL.Path,
					}).Warn("failed to cacheService.Set")
				}
			}

			return nil
		}
	}
}
