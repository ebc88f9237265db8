package domain

import "time"

type Plan string

const (
	PlanFree    Plan = "free"
	PlanStarter Plan = "starter"
	PlanPro     Plan = "pro"
)

type BillingInterval string

const (
	BillingMonthly BillingInterval = "monthly"
	BillingAnnual  BillingInterval = "annual"
)

const (
	SubscriptionStatusActive   = "active"
	SubscriptionStatusCanceled = "canceled"
)

// Profile is the subscriber row kept in the profiles table.
type Profile struct {
	ID                   string     `json:"id"`
	StripeCustomerID     *string    `json:"stripe_customer_id"`
	StripeSubscriptionID *string    `json:"stripe_subscription_id"`
	Plan                 Plan       `json:"plan"`
	SubscriptionStatus   string     `json:"subscription_status"`
	CurrentPeriodEnd     *time.Time `json:"current_period_end"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type CheckoutRequest struct {
	PriceID    string          `json:"priceId"`
	Plan       Plan            `json:"plan"`
	Billing    BillingInterval `json:"billing"`
	UserID     string          `json:"userId"`
	Email      string          `json:"email"`
	SuccessURL string          `json:"successUrl"`
	CancelURL  string          `json:"cancelUrl"`
}

// CheckoutParams is what the payments integrator needs to open a session.
type CheckoutParams struct {
	PriceID        string
	Plan           Plan
	UserID         string
	Email          string
	SuccessURL     string
	CancelURL      string
	IdempotencyKey string
}

type CheckoutSession struct {
	SessionID string `json:"sessionId"`
	URL       string `json:"url"`
}

const (
	EventCheckoutSessionCompleted = "checkout.session.completed"
	EventSubscriptionUpdated      = "customer.subscription.updated"
	EventSubscriptionDeleted      = "customer.subscription.deleted"
)

// SubscriptionEvent is a verified payments webhook event. Only the part that
// matches Type is populated.
type SubscriptionEvent struct {
	ID              string
	Type            string
	CheckoutSession *CheckoutSessionData
	Subscription    *Subscription
}

type CheckoutSessionData struct {
	ID             string
	UserID         string
	CustomerID     string
	SubscriptionID string
}

type Subscription struct {
	ID               string
	CustomerID       string
	Status           string
	PriceID          string
	CurrentPeriodEnd *time.Time
}

type WebhookResult struct {
	Received  bool   `json:"received"`
	EventType string `json:"eventType"`
	Handled   bool   `json:"handled"`
}
