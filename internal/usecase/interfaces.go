package usecase

import (
	"context"

	"github.com/Michaelcode2/product-api-service/internal/models"
	"github.com/Michaelcode2/product-api-service/internal/repo/erp"
)

type ProductUsecase interface {
	// LookupByBarcode resolves an EAN-13 scan code to a product record.
	// Returns models.ErrInvalidBarcode, models.ErrUnavailable,
	// models.ErrNotFound or a wrapped models.ErrLookupExec.
	LookupByBarcode(ctx context.Context, scanCode string) (models.ProductRecord, error)
}

// SessionSource is the slice of the connector manager the lookup engine
// needs: the current session, read-only.
type SessionSource interface {
	Current() erp.Session
}
