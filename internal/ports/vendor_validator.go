package ports

import (
	"context"

	"github.com/Gunvolt24/vendorcache/internal/domain"
)

type VendorValidator interface {
	Validate(ctx context.Context, vendor *domain.VendorRecord) error
}
