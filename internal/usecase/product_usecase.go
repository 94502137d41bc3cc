package usecase

import (
	"context"
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Michaelcode2/product-api-service/internal/config"
	"github.com/Michaelcode2/product-api-service/internal/models"
	"github.com/Michaelcode2/product-api-service/internal/queries"
	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
	"github.com/Michaelcode2/product-api-service/pkg/ean13"
)

type productUsecase struct {
	sessions SessionSource
	queries  queries.Store
	cfg      config.ERPConfig
	log      *zap.SugaredLogger
}

func NewProductUsecase(
	cfg *config.Config,
	sessions SessionSource,
	store queries.Store,
	log *zap.SugaredLogger,
) ProductUsecase {
	return &productUsecase{
		sessions: sessions,
		queries:  store,
		cfg:      cfg.ERP,
		log:      log.Named("lookup"),
	}
}

func (u *productUsecase) LookupByBarcode(ctx context.Context, scanCode string) (models.ProductRecord, error) {
	if !ean13.IsValid(scanCode) {
		return models.ProductRecord{}, models.ErrInvalidBarcode
	}

	session := u.sessions.Current()
	if session == nil {
		return models.ProductRecord{}, models.ErrUnavailable
	}

	text, err := u.queries.Load(u.cfg.LookupQuery)
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("%w: %v", models.ErrLookupExec, err)
	}

	rows, err := session.Query(ctx, text, map[string]any{"barcode": scanCode})
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("%w: %v", models.ErrLookupExec, err)
	}
	defer rows.Close()

	// Only the first row matters; duplicates resolve by upstream row order.
	if !rows.Next() {
		// a failed cursor advance must not masquerade as an empty result
		if err := rows.Err(); err != nil {
			return models.ProductRecord{}, fmt.Errorf("%w: %v", models.ErrLookupExec, err)
		}
		u.log.Warnw("no product for barcode", "scan_code", scanCode)
		return models.ProductRecord{}, models.ErrNotFound
	}

	row, err := u.scanRow(rows, scanCode)
	if err != nil {
		return models.ProductRecord{}, fmt.Errorf("%w: %v", models.ErrLookupExec, err)
	}
	return models.NewProductRecord(row), nil
}

// scanRow reads the externally named columns into the internal row contract.
func (u *productUsecase) scanRow(rows erp.Rows, scanCode string) (models.ProductRow, error) {
	row := models.ProductRow{Barcode: scanCode}

	name, err := rows.Value(u.cfg.FieldName)
	if err != nil {
		return row, err
	}
	row.Name = asString(name)

	unit, err := rows.Value(u.cfg.FieldUnit)
	if err != nil {
		return row, err
	}
	row.Unit = asString(unit)

	price, err := rows.Value(u.cfg.FieldPrice)
	if err != nil {
		return row, err
	}
	row.Price = asPrice(price)

	return row, nil
}

func asString(v any) string {
	if v == nil {
		return ""
	}
	return fmt.Sprint(v)
}

// asPrice coerces the value the COM bridge hands back. Null prices stay nil
// so the record mapping can zero them; negative values clamp to zero since a
// price below zero is upstream garbage, not a discount.
func asPrice(v any) *float64 {
	var price float64
	switch t := v.(type) {
	case nil:
		return nil
	case float64:
		price = t
	case float32:
		price = float64(t)
	case int:
		price = float64(t)
	case int64:
		price = float64(t)
	case string:
		parsed, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return nil
		}
		price = parsed
	default:
		return nil
	}
	if price < 0 {
		price = 0
	}
	return &price
}
