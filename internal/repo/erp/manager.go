package erp

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/config"
	"github.com/Michaelcode2/product-api-service/internal/models"
)

// Manager owns the single session to the external system. The session is
// opened once at startup and replaced only wholesale; readers get it through
// an atomic pointer so concurrent lookups never observe a torn handle.
//
// A dropped session is not reopened automatically: the service reports
// degraded health and fails lookups until the process is restarted. This
// mirrors the deployed behavior and keeps failure modes predictable.
type Manager struct {
	driver  Driver
	cfg     config.ERPConfig
	log     *zap.SugaredLogger
	session atomic.Pointer[sessionBox]
}

// sessionBox exists so the atomic pointer can distinguish "never opened"
// (nil box) from an open session.
type sessionBox struct {
	session Session
}

func NewManager(cfg *config.Config, driver Driver, log *zap.SugaredLogger) *Manager {
	return &Manager{
		driver: driver,
		cfg:    cfg.ERP,
		log:    log.Named("erp"),
	}
}

// Initialize reads the connection descriptor and opens the session. Any
// failure wraps models.ErrConnectorInit and must abort startup: the process
// must not claim to be running without a session.
func (m *Manager) Initialize(ctx context.Context) error {
	connString, err := m.readConnectionString()
	if err != nil {
		return fmt.Errorf("%w: %v", models.ErrConnectorInit, err)
	}

	session, err := m.driver.Open(ctx, connString)
	if err != nil {
		m.log.Errorw("failed to initialize COM connector",
			"connection_file", m.cfg.ConnectionFile,
			"error", err,
		)
		return fmt.Errorf("%w: %v", models.ErrConnectorInit, err)
	}

	m.session.Store(&sessionBox{session: session})
	m.log.Infow("COM connector initialized successfully",
		"connection_file", m.cfg.ConnectionFile,
	)
	return nil
}

// Current returns the live session, or nil when none was ever established.
// Never blocks.
func (m *Manager) Current() Session {
	box := m.session.Load()
	if box == nil {
		return nil
	}
	return box.session
}

// IsAlive reports whether a session handle exists. It deliberately does not
// round-trip to the external system: health responses stay fast at the cost
// of missing silent upstream disconnects.
func (m *Manager) IsAlive() bool {
	return m.Current() != nil
}

// Close releases the session on shutdown.
func (m *Manager) Close() error {
	box := m.session.Swap(nil)
	if box == nil {
		return nil
	}
	return box.session.Close()
}

// readConnectionString loads the single-line connection descriptor. The
// descriptor value itself is never logged: it can carry credentials.
func (m *Manager) readConnectionString() (string, error) {
	data, err := os.ReadFile(m.cfg.ConnectionFile)
	if err != nil {
		return "", fmt.Errorf("read connection file: %w", err)
	}
	connString := strings.TrimSpace(string(data))
	if connString == "" {
		return "", fmt.Errorf("connection file %s is empty", m.cfg.ConnectionFile)
	}
	return connString, nil
}
