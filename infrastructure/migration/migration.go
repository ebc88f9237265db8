package migration

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/cashpulse-api/infrastructure/database/postgres"
)

type step struct {
	name  string
	query string
}

// steps are idempotent so Apply can run on every start.
var steps = []step{
	{
		name: "create profiles",
		query: `CREATE TABLE IF NOT EXISTS profiles (
			id                     TEXT PRIMARY KEY,
			stripe_customer_id     TEXT,
			stripe_subscription_id TEXT,
			plan                   TEXT NOT NULL DEFAULT 'free',
			subscription_status    TEXT,
			current_period_end     TIMESTAMPTZ,
			updated_at             TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`,
	},
	{
		name:  "index profiles by stripe customer",
		query: `CREATE UNIQUE INDEX IF NOT EXISTS profiles_stripe_customer_id_idx ON profiles (stripe_customer_id)`,
	},
}

// Apply creates the profile schema when it is missing.
func Apply(ctx context.Context, conn postgres.Queryer) error {
	for _, s := range steps {
		if _, err := conn.Exec(ctx, s.query); err != nil {
			return errors.Wrapf(err, "migration: %s", s.name)
		}
		logrus.WithField("step", s.name).Debug("migration: step applied")
	}
	return nil
}
