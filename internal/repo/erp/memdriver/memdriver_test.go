package memdriver

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQueryMatchesByBarcodeParam(t *testing.T) {
	d := New(
		Row{"Штрихкод": "4820000195447", "Цена": 1.0},
		Row{"Штрихкод": "5901234123457", "Цена": 2.0},
	)
	session, err := d.Open(context.Background(), "")
	require.NoError(t, err)

	rows, err := session.Query(context.Background(), "ignored", map[string]any{"barcode": "5901234123457"})
	require.NoError(t, err)
	defer rows.Close()

	require.True(t, rows.Next())
	price, err := rows.Value("Цена")
	require.NoError(t, err)
	assert.Equal(t, 2.0, price)
	assert.False(t, rows.Next())
	assert.NoError(t, rows.Err())
}

func TestQueryNoMatch(t *testing.T) {
	d := New()
	session, err := d.Open(context.Background(), "")
	require.NoError(t, err)

	rows, err := session.Query(context.Background(), "", map[string]any{"barcode": "x"})
	require.NoError(t, err)
	assert.False(t, rows.Next())
}

func TestOpenErr(t *testing.T) {
	d := New()
	d.OpenErr = errors.New("boom")
	_, err := d.Open(context.Background(), "")
	assert.Error(t, err)
}

func TestClosedSessionRejectsQueries(t *testing.T) {
	d := New(Row{"Штрихкод": "1"})
	session, err := d.Open(context.Background(), "")
	require.NoError(t, err)
	require.NoError(t, session.Close())

	_, err = session.Query(context.Background(), "", map[string]any{"barcode": "1"})
	assert.Error(t, err)
}

func TestValueWithoutNext(t *testing.T) {
	d := New(Row{"Штрихкод": "1"})
	session, err := d.Open(context.Background(), "")
	require.NoError(t, err)

	rows, err := session.Query(context.Background(), "", map[string]any{"barcode": "1"})
	require.NoError(t, err)

	_, err = rows.Value("Штрихкод")
	assert.Error(t, err)
}
