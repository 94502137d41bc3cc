//go:build !windows

package comv8

import (
	"context"
	"errors"

	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
)

// The V83.COMConnector automation object only exists on Windows hosts. On
// other platforms the driver refuses to open so a misconfigured deployment
// fails at startup instead of at the first request. Use the in-memory
// driver (--demo) for local development.

var errUnsupported = errors.New("V83.COMConnector requires a Windows host")

type driver struct{}

func New() erp.Driver {
	return driver{}
}

func (driver) Open(context.Context, string) (erp.Session, error) {
	return nil, errUnsupported
}
