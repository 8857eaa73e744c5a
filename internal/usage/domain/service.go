package domain

import (
	"context"

	"github.com/gagnaveita/portvakt/internal/kennitala"
)

// Service orchestrates directory lookup and monitoring query for a
// validated identifier.
type Service interface {
	GetUsageData(ctx context.Context, kt kennitala.Kennitala) (*UsageRecord, error)
}
