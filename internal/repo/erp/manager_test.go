package erp

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/config"
	"github.com/Michaelcode2/product-api-service/internal/models"
)

type fakeDriver struct {
	openErr    error
	gotConn    string
	session    *fakeSession
	openCalled int
}

func (d *fakeDriver) Open(_ context.Context, connString string) (Session, error) {
	d.openCalled++
	d.gotConn = connString
	if d.openErr != nil {
		return nil, d.openErr
	}
	return d.session, nil
}

type fakeSession struct {
	closed bool
}

func (s *fakeSession) Query(context.Context, string, map[string]any) (Rows, error) {
	return nil, errors.New("not implemented")
}

func (s *fakeSession) Close() error {
	s.closed = true
	return nil
}

func writeConnFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "connection.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestManager(t *testing.T, connFile string, driver Driver) *Manager {
	t.Helper()
	cfg := &config.Config{}
	cfg.ERP.ConnectionFile = connFile
	return NewManager(cfg, driver, zap.NewNop().Sugar())
}

func TestManagerInitialize(t *testing.T) {
	driver := &fakeDriver{session: &fakeSession{}}
	m := newTestManager(t, writeConnFile(t, `File="C:\common\DB\Retail";`+"\n"), driver)

	require.NoError(t, m.Initialize(context.Background()))
	assert.Equal(t, `File="C:\common\DB\Retail";`, driver.gotConn)
	assert.True(t, m.IsAlive())
	assert.NotNil(t, m.Current())
}

func TestManagerInitializeMissingFile(t *testing.T) {
	driver := &fakeDriver{session: &fakeSession{}}
	m := newTestManager(t, filepath.Join(t.TempDir(), "nope.txt"), driver)

	err := m.Initialize(context.Background())
	require.ErrorIs(t, err, models.ErrConnectorInit)
	assert.Zero(t, driver.openCalled)
	assert.False(t, m.IsAlive())
}

func TestManagerInitializeEmptyFile(t *testing.T) {
	driver := &fakeDriver{session: &fakeSession{}}
	m := newTestManager(t, writeConnFile(t, "  \n"), driver)

	err := m.Initialize(context.Background())
	require.ErrorIs(t, err, models.ErrConnectorInit)
	assert.Zero(t, driver.openCalled)
}

func TestManagerInitializeOpenFails(t *testing.T) {
	driver := &fakeDriver{openErr: errors.New("COM rejected connection")}
	m := newTestManager(t, writeConnFile(t, "File=x;"), driver)

	err := m.Initialize(context.Background())
	require.ErrorIs(t, err, models.ErrConnectorInit)
	assert.False(t, m.IsAlive())
	assert.Nil(t, m.Current())
}

func TestManagerClose(t *testing.T) {
	session := &fakeSession{}
	driver := &fakeDriver{session: session}
	m := newTestManager(t, writeConnFile(t, "File=x;"), driver)

	require.NoError(t, m.Initialize(context.Background()))
	require.NoError(t, m.Close())
	assert.True(t, session.closed)
	assert.False(t, m.IsAlive())

	// double close is a no-op
	require.NoError(t, m.Close())
}
