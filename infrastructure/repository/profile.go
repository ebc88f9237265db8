package repository

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/pkg/errors"
	"github.com/vfg2006/cashpulse-api/infrastructure/database/postgres"
	"github.com/vfg2006/cashpulse-api/internal/domain"
)

//go:generate mockgen -source=profile.go -destination=mocks/profile.go -package=mocks

const profilesTable = "profiles"

var profileColumns = []string{
	"id",
	"stripe_customer_id",
	"stripe_subscription_id",
	"plan",
	"subscription_status",
	"current_period_end",
	"updated_at",
}

type ProfileRepository interface {
	GetByCustomerID(ctx context.Context, customerID string) (*domain.Profile, error)
	UpsertSubscription(ctx context.Context, profile *domain.Profile) error
	UpdateSubscription(ctx context.Context, profile *domain.Profile) error
	WithinTransaction(ctx context.Context, fn func(ProfileRepository) error) error
}

type profileRepository struct {
	conn postgres.Queryer
	db   postgres.Transactor
	// lock adds FOR UPDATE to reads; set on transaction scoped copies.
	lock bool
}

func NewProfileRepository(db postgres.Transactor) ProfileRepository {
	return &profileRepository{
		conn: db,
		db:   db,
	}
}

// WithinTransaction runs fn against a copy of the repository bound to one
// transaction. Rows read through it stay locked until fn returns. Nested
// calls reuse the open transaction.
func (r *profileRepository) WithinTransaction(ctx context.Context, fn func(ProfileRepository) error) error {
	if r.db == nil {
		return fn(r)
	}

	return r.db.RunInTransaction(ctx, func(q postgres.Queryer) error {
		return fn(&profileRepository{conn: q, lock: true})
	})
}

// GetByCustomerID returns nil, nil when no profile carries the customer id.
func (r *profileRepository) GetByCustomerID(ctx context.Context, customerID string) (*domain.Profile, error) {
	builder := squirrel.
		Select(profileColumns...).
		From(profilesTable).
		Where(squirrel.Eq{"stripe_customer_id": customerID}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar)
	if r.lock {
		builder = builder.Suffix("FOR UPDATE")
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, err
	}

	profile := &domain.Profile{}
	err = r.conn.QueryRow(ctx, query, args...).Scan(
		&profile.ID,
		&profile.StripeCustomerID,
		&profile.StripeSubscriptionID,
		&profile.Plan,
		&profile.SubscriptionStatus,
		&profile.CurrentPeriodEnd,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, errors.Wrap(err, "profiles: select by customer id")
	}

	return profile, nil
}

// UpsertSubscription writes the subscription fields of the profile keyed by
// its id, creating the row when it does not exist yet.
func (r *profileRepository) UpsertSubscription(ctx context.Context, p *domain.Profile) error {
	query, args, err := squirrel.
		Insert(profilesTable).
		Columns(profileColumns...).
		Values(
			p.ID,
			p.StripeCustomerID,
			p.StripeSubscriptionID,
			string(p.Plan),
			p.SubscriptionStatus,
			p.CurrentPeriodEnd,
			squirrel.Expr("NOW()"),
		).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			stripe_customer_id = EXCLUDED.stripe_customer_id,
			stripe_subscription_id = EXCLUDED.stripe_subscription_id,
			plan = EXCLUDED.plan,
			subscription_status = EXCLUDED.subscription_status,
			current_period_end = EXCLUDED.current_period_end,
			updated_at = EXCLUDED.updated_at`).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "profiles: upsert subscription")
	}

	return nil
}

// UpdateSubscription overwrites plan, status and period end of an existing
// profile.
func (r *profileRepository) UpdateSubscription(ctx context.Context, p *domain.Profile) error {
	query, args, err := squirrel.
		Update(profilesTable).
		Set("plan", string(p.Plan)).
		Set("subscription_status", p.SubscriptionStatus).
		Set("current_period_end", p.CurrentPeriodEnd).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": p.ID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.conn.Exec(ctx, query, args...); err != nil {
		return errors.Wrap(err, "profiles: update subscription")
	}

	return nil
}
