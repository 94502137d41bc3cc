// Package app assembles the service with uber/fx. Startup order is fixed:
// logging first, then the COM connector (fatal on failure), then the HTTP
// listener and the maintenance loop. Shutdown runs the same hooks in
// reverse on SIGINT/SIGTERM.
package app

import (
	"fmt"

	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/Michaelcode2/product-api-service/internal/config"
	"github.com/Michaelcode2/product-api-service/internal/maintenance"
	"github.com/Michaelcode2/product-api-service/internal/queries"
	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
	"github.com/Michaelcode2/product-api-service/internal/server"
	"github.com/Michaelcode2/product-api-service/internal/usecase"
	"github.com/Michaelcode2/product-api-service/pkg/logging"
)

// Options select how the application runs.
type Options struct {
	// Demo swaps the COM connector for the in-memory driver with sample
	// data, for development off the Windows/1C host.
	Demo bool
}

func Invoke(opts Options, funcs ...any) *fx.App {
	conf := config.MustLoad()
	log, zlog, err := logging.New(logging.Options{
		Dir:      conf.Log.Dir,
		FileName: conf.Log.FileName,
	})
	if err != nil {
		panic(fmt.Errorf("set up logging: %w", err))
	}
	log.Debugw("config loaded", "config", conf)

	return fx.New(
		fx.WithLogger(func() fxevent.Logger {
			l := &fxevent.ZapLogger{Logger: zlog}
			l.UseLogLevel(zapcore.DebugLevel)
			return l
		}),
		fx.Supply(conf),
		fx.Provide(
			func() *zap.SugaredLogger { return log },
			newDriver(opts),

			erp.NewManager,
			provideSessionSource,
			provideConnectorHealth,

			queries.NewStore,
			usecase.NewProductUsecase,

			server.NewController,
			maintenance.NewJanitor,
		),
		fx.Invoke(InitializeConnector),
		fx.Invoke(funcs...),
	)
}
