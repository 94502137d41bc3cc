package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Server ServerConfig `envPrefix:"SERVER_"`
	ERP    ERPConfig    `envPrefix:"ERP_"`
	Log    LogConfig    `envPrefix:"LOG_"`
}

type ServerConfig struct {
	Port string `env:"PORT" envDefault:"8880"`
	Host string `env:"HOST" envDefault:"0.0.0.0"`
}

func (c ServerConfig) Addr() string {
	return c.Host + ":" + c.Port
}

// ERPConfig describes how to reach the external 1C system: where the
// connection descriptor and query texts live, and how the query result
// columns are named upstream.
type ERPConfig struct {
	// ConnectionFile holds a single-line v8.3 connection string, e.g.
	// `File="C:\common\DB\Retail";Usr="admin";Pwd="";`.
	ConnectionFile string `env:"CONNECTION_FILE" envDefault:"config/connection.txt"`
	QueryDir       string `env:"QUERY_DIR" envDefault:"queries"`
	LookupQuery    string `env:"LOOKUP_QUERY" envDefault:"product_by_barcode"`

	// Result column identifiers as the ERP returns them. Defaults match the
	// stock 1C retail configuration.
	FieldBarcode string `env:"FIELD_BARCODE" envDefault:"Штрихкод"`
	FieldName    string `env:"FIELD_NAME" envDefault:"Номенклатура"`
	FieldUnit    string `env:"FIELD_UNIT" envDefault:"ЕдиницаИзмерения"`
	FieldPrice   string `env:"FIELD_PRICE" envDefault:"Цена"`
}

type LogConfig struct {
	Dir           string        `env:"DIR" envDefault:"logs"`
	FileName      string        `env:"FILE_NAME" envDefault:"api_service.log"`
	RetentionDays int           `env:"RETENTION_DAYS" envDefault:"10"`
	CleanupEvery  time.Duration `env:"CLEANUP_EVERY" envDefault:"24h"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.ERP.ConnectionFile = resolvePath(cfg.ERP.ConnectionFile)
	cfg.ERP.QueryDir = resolvePath(cfg.ERP.QueryDir)
	cfg.Log.Dir = resolvePath(cfg.Log.Dir)
	return cfg, nil
}

func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

// resolvePath anchors relative paths at the executable's directory so the
// service finds its config no matter which working directory the service
// manager starts it in. Falls back to the path as given when the executable
// location cannot be determined.
func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	exe, err := os.Executable()
	if err != nil {
		return path
	}
	return filepath.Join(filepath.Dir(exe), path)
}
