package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/config"
	pkgmdw "github.com/Michaelcode2/product-api-service/internal/server/middleware"
)

// StartServer wires the HTTP listener into the fx lifecycle. The listener
// runs on its own goroutine; an unexpected listen failure shuts the whole
// application down instead of leaving a half-started process.
func StartServer(
	lc fx.Lifecycle,
	sd fx.Shutdowner,
	conf *config.Config,
	log *zap.SugaredLogger,
	handler Controller,
) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgmdw.NewValidator()
	e.HTTPErrorHandler = errorHandler()

	httpLog := log.Named("http")
	logConfig := pkgmdw.LogRequestConfig{
		Logger: httpLog,
		Enabled: func(c echo.Context) bool {
			uri := c.Request().RequestURI
			return uri != "/api/health" && uri != "/metrics"
		},
	}

	e.Use(pkgmdw.Metrics())
	e.Use(pkgmdw.RequestID())
	e.Use(pkgmdw.LogRequest(logConfig))
	e.Use(middleware.RecoverWithConfig(middleware.RecoverConfig{
		LogErrorFunc: func(c echo.Context, err error, stack []byte) error {
			httpLog.Errorw("PANIC RECOVER", "error", err, "stack", string(stack))
			return nil
		},
	}))
	pkgmdw.PprofWrap(e)

	e.GET("/api/health", handler.Health)
	e.GET("/products/:scanCode", handler.GetProduct)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				log.Infow("starting HTTP server", "addr", conf.Server.Addr())
				if err := e.Start(conf.Server.Addr()); !errors.Is(err, http.ErrServerClosed) {
					log.Errorw("HTTP server stopped unexpectedly", "error", err)
					sd.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
}
