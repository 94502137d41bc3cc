package app

import (
	"context"

	"go.uber.org/fx"

	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
	"github.com/Michaelcode2/product-api-service/internal/repo/erp/comv8"
	"github.com/Michaelcode2/product-api-service/internal/repo/erp/memdriver"
	"github.com/Michaelcode2/product-api-service/internal/server"
	"github.com/Michaelcode2/product-api-service/internal/usecase"
)

func newDriver(opts Options) func() erp.Driver {
	return func() erp.Driver {
		if opts.Demo {
			return demoDriver()
		}
		return comv8.New()
	}
}

// demoDriver mimics a small retail infobase.
func demoDriver() erp.Driver {
	return memdriver.New(
		memdriver.Row{
			"Штрихкод":         "4820000195447",
			"Номенклатура":     "Молоко 2.5% 1л",
			"ЕдиницаИзмерения": "шт",
			"Цена":             42.50,
		},
		memdriver.Row{
			"Штрихкод":         "5901234123457",
			"Номенклатура":     "Хлеб пшеничный",
			"ЕдиницаИзмерения": "",
			"Цена":             18.00,
		},
	)
}

func provideSessionSource(m *erp.Manager) usecase.SessionSource { return m }

func provideConnectorHealth(m *erp.Manager) server.ConnectorHealth { return m }

// InitializeConnector opens the ERP session during startup. A failure here
// aborts App.Start, so the process exits non-zero before the listener ever
// reports healthy.
func InitializeConnector(lc fx.Lifecycle, m *erp.Manager) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			return m.Initialize(ctx)
		},
		OnStop: func(ctx context.Context) error {
			return m.Close()
		},
	})
}
