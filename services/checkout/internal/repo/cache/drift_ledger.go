package cache

import (
	"context"
	"fmt"

	"pin-packs/services/checkout/internal/entity"

	"github.com/redis/go-redis/v9"
)

// DriftLedgerKey is a hash of pack id to the number of purchases whose
// download count was never applied.
const DriftLedgerKey = "checkout:download_drift"

type DriftLedger struct {
	client *redis.Client
}

func NewDriftLedger(client *redis.Client) *DriftLedger {
	return &DriftLedger{client: client}
}

func (l *DriftLedger) PublishReport(ctx context.Context, report *entity.FulfillmentReport) error {
	failed := report.FailedPackIDs()
	if len(failed) == 0 {
		return nil
	}

	pipe := l.client.Pipeline()
	for _, packID := range failed {
		pipe.HIncrBy(ctx, DriftLedgerKey, packID, 1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to record download drift: %w", err)
	}
	return nil
}
