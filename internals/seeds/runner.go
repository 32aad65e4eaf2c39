package seeds

import (
	"context"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"educonnect_backend/internals/features/records/store"
	records "educonnect_backend/internals/seeds/records"
)

// RunAllSeeds fills an empty store with the demo data set.
func RunAllSeeds(ctx context.Context, st *store.Store, logger log.Logger) error {
	logger = log.With(logger, "component", "seeds")

	//* Records
	if err := records.SeedRecords(ctx, st, logger); err != nil {
		return err
	}

	level.Debug(logger).Log("msg", "seeding done")
	return nil
}
