// Package memdriver is an in-memory erp.Driver used by tests and by demo
// mode. It ignores the query text and answers by the `barcode` parameter
// against a fixed dataset, exposing values under the same field identifiers
// the real system uses.
package memdriver

import (
	"context"
	"fmt"
	"sync"

	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
)

// Row is one product row keyed by the external field identifiers, e.g.
// {"Штрихкод": "4820000195447", "Цена": 10.99}.
type Row map[string]any

// Driver serves sessions over a shared dataset.
type Driver struct {
	// BarcodeField is the parameter/field used to match rows. Defaults to
	// the stock identifier when empty.
	BarcodeField string
	// OpenErr, when set, makes Open fail. Lets tests exercise startup
	// failure paths.
	OpenErr error

	mu   sync.RWMutex
	data []Row
}

const defaultBarcodeField = "Штрихкод"

func New(rows ...Row) *Driver {
	return &Driver{data: rows}
}

// Add appends rows to the dataset.
func (d *Driver) Add(rows ...Row) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.data = append(d.data, rows...)
}

func (d *Driver) Open(context.Context, string) (erp.Session, error) {
	if d.OpenErr != nil {
		return nil, d.OpenErr
	}
	return &session{driver: d}, nil
}

type session struct {
	driver *Driver
	mu     sync.Mutex
	closed bool
}

func (s *session) Query(ctx context.Context, _ string, params map[string]any) (erp.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	closed := s.closed
	s.mu.Unlock()
	if closed {
		return nil, fmt.Errorf("session is closed")
	}

	field := s.driver.BarcodeField
	if field == "" {
		field = defaultBarcodeField
	}
	barcode := params["barcode"]

	s.driver.mu.RLock()
	defer s.driver.mu.RUnlock()
	var matched []Row
	for _, row := range s.driver.data {
		if fmt.Sprint(row[field]) == fmt.Sprint(barcode) {
			matched = append(matched, row)
		}
	}
	return &rows{rows: matched, pos: -1}, nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

type rows struct {
	rows []Row
	pos  int
}

func (r *rows) Next() bool {
	if r.pos+1 >= len(r.rows) {
		return false
	}
	r.pos++
	return true
}

func (r *rows) Err() error { return nil }

func (r *rows) Value(field string) (any, error) {
	if r.pos < 0 || r.pos >= len(r.rows) {
		return nil, fmt.Errorf("no current row")
	}
	return r.rows[r.pos][field], nil
}

func (r *rows) Close() error { return nil }
