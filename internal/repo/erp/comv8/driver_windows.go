//go:build windows

// Package comv8 implements the erp.Driver contract on top of the 1C
// V83.COMConnector OLE automation object.
package comv8

import (
	"context"
	"fmt"
	"sync"

	"github.com/go-ole/go-ole"
	"github.com/go-ole/go-ole/oleutil"

	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
)

const progID = "V83.COMConnector"

type driver struct{}

// New returns the real driver backed by the v8.3 COM connector.
func New() erp.Driver {
	return driver{}
}

func (driver) Open(_ context.Context, connString string) (erp.Session, error) {
	// The connector joins the multi-threaded apartment on purpose: session
	// calls arrive on whatever goroutine the HTTP server schedules, so an
	// STA pinned with runtime.LockOSThread would need a dedicated call
	// broker. In the MTA any thread may call, and the session mutex
	// provides the one-call-at-a-time ordering the v8.3 connection needs.
	if err := ole.CoInitializeEx(0, ole.COINIT_MULTITHREADED); err != nil {
		// S_FALSE means the apartment is already initialized on this thread.
		if oleErr, ok := err.(*ole.OleError); !ok || oleErr.Code() != uintptr(1) {
			return nil, fmt.Errorf("initialize COM: %w", err)
		}
	}

	connector, err := oleutil.CreateObject(progID)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", progID, err)
	}

	dispatch, err := connector.QueryInterface(ole.IID_IDispatch)
	if err != nil {
		connector.Release()
		return nil, fmt.Errorf("query IDispatch on %s: %w", progID, err)
	}

	result, err := oleutil.CallMethod(dispatch, "Connect", connString)
	if err != nil {
		dispatch.Release()
		connector.Release()
		return nil, fmt.Errorf("connect to infobase: %w", err)
	}

	return &session{
		connector: connector,
		dispatch:  dispatch,
		conn:      result.ToIDispatch(),
	}, nil
}

// session wraps one live infobase connection. The COM apartment does not
// tolerate concurrent calls on a single connection, so every Query holds mu.
type session struct {
	mu        sync.Mutex
	connector *ole.IUnknown
	dispatch  *ole.IDispatch
	conn      *ole.IDispatch
}

func (s *session) Query(ctx context.Context, text string, params map[string]any) (erp.Rows, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	queryVar, err := oleutil.CallMethod(s.conn, "NewObject", "Query")
	if err != nil {
		return nil, fmt.Errorf("new Query object: %w", err)
	}
	query := queryVar.ToIDispatch()
	defer query.Release()

	if _, err := oleutil.PutProperty(query, "Text", text); err != nil {
		return nil, fmt.Errorf("set query text: %w", err)
	}
	for name, value := range params {
		if _, err := oleutil.CallMethod(query, "SetParameter", name, value); err != nil {
			return nil, fmt.Errorf("set parameter %q: %w", name, err)
		}
	}

	resultVar, err := oleutil.CallMethod(query, "Execute")
	if err != nil {
		return nil, fmt.Errorf("execute query: %w", err)
	}
	result := resultVar.ToIDispatch()
	defer result.Release()

	selectionVar, err := oleutil.CallMethod(result, "Choose")
	if err != nil {
		return nil, fmt.Errorf("choose selection: %w", err)
	}

	return &rows{session: s, selection: selectionVar.ToIDispatch()}, nil
}

func (s *session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.conn != nil {
		s.conn.Release()
		s.conn = nil
	}
	if s.dispatch != nil {
		s.dispatch.Release()
		s.dispatch = nil
	}
	if s.connector != nil {
		s.connector.Release()
		s.connector = nil
	}
	return nil
}

// rows iterates a 1C query selection. The cursor shares the session's
// apartment, so advancing and reading also hold the session mutex.
type rows struct {
	session   *session
	selection *ole.IDispatch
	err       error
}

func (r *rows) Next() bool {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	if r.selection == nil || r.err != nil {
		return false
	}
	v, err := oleutil.CallMethod(r.selection, "Next")
	if err != nil {
		// a dropped session surfaces here; Err lets the caller tell this
		// apart from an exhausted cursor
		r.err = fmt.Errorf("advance selection: %w", err)
		return false
	}
	ok, _ := v.Value().(bool)
	return ok
}

func (r *rows) Err() error {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	return r.err
}

func (r *rows) Value(field string) (any, error) {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	if r.selection == nil {
		return nil, fmt.Errorf("selection is closed")
	}
	v, err := oleutil.GetProperty(r.selection, field)
	if err != nil {
		return nil, fmt.Errorf("read field %q: %w", field, err)
	}
	defer v.Clear()
	return v.Value(), nil
}

func (r *rows) Close() error {
	r.session.mu.Lock()
	defer r.session.mu.Unlock()
	if r.selection != nil {
		r.selection.Release()
		r.selection = nil
	}
	return nil
}
