package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/x-xyz/traitkit/base/ctx"
	"github.com/x-xyz/traitkit/base/log"
	"github.com/x-xyz/traitkit/base/metrics"
	bValidator "github.com/x-xyz/traitkit/base/validator"
	"github.com/x-xyz/traitkit/domain"
	mmiddleware "github.com/x-xyz/traitkit/middleware"
	"github.com/x-xyz/traitkit/service/cache/provider/primitive"
	"github.com/x-xyz/traitkit/service/provider"
	coin_delivery "github.com/x-xyz/traitkit/stores/coin/delivery/http"
	hc_delivery "github.com/x-xyz/traitkit/stores/healthcheck/delivery/http"
	hc_repo "github.com/x-xyz/traitkit/stores/healthcheck/repository"
	hc_usecase "github.com/x-xyz/traitkit/stores/healthcheck/usecase"
	network_delivery "github.com/x-xyz/traitkit/stores/network/delivery/http"
	provider_delivery "github.com/x-xyz/traitkit/stores/provider/delivery/http"
	trait_delivery "github.com/x-xyz/traitkit/stores/trait/delivery/http"
	trait_usecase "github.com/x-xyz/traitkit/stores/trait/usecase"
)

func setup() {
	if err := initConfig(os.Args[1:]); err != nil {
		panic(err)
	}

	if lvl := viper.GetString("log.level"); !log.SetLevel(lvl) {
		log.Log().WithField("level", lvl).Warn("unknown log level")
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	setup()

	// init echo
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// detect wallet surfaces
	context.Info("init provider environment")
	providerCfg := providerConfig()
	env := provider.DetectEnvironment(context, providerCfg)
	defer env.Close()

	// the health check pings whatever GetProvider resolves at startup
	var healthProvider domain.EthProvider
	if p, err := provider.GetProvider(context, env, providerCfg.Fallback); err != nil {
		context.WithField("err", err).Warn("no provider for health check")
	} else {
		healthProvider = p
	}

	// response cache
	cacheTTL := viper.GetDuration("cache.ttl")
	httpCache := primitive.NewPrimitive("httpCacheMiddleware", viper.GetInt("cache.sizeMB"))
	cacheMiddleware := mmiddleware.CacheHttp(httpCache, cacheTTL)

	// usecases
	traitUC := trait_usecase.New(trait_usecase.WithBatchWorkers(viper.GetInt("trait.batchWorkers")))
	hcUC := hc_usecase.New(hc_repo.New(healthProvider))

	// handlers
	hc_delivery.New(e, hcUC)
	trait_delivery.New(e, traitUC)
	// uncached so every unrecognized name is logged
	network_delivery.New(e)
	coin_delivery.New(e, cacheMiddleware)
	provider_delivery.New(e, env, metrics.New("provider"))

	// Start server
	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
