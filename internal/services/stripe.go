package services

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
)

// CheckoutRequest describes one hosted checkout to create. Amount is in
// minor currency units.
type CheckoutRequest struct {
	Amount        int64
	Currency      string
	ParcelID      string
	ParcelName    string
	CustomerEmail string
}

// CheckoutSession is the provider-neutral view of a hosted checkout
// session, as returned on create and retrieve.
type CheckoutSession struct {
	ID              string
	URL             string
	PaymentStatus   string
	AmountTotal     int64
	Currency        string
	CustomerEmail   string
	PaymentIntentID string
	Metadata        map[string]string
}

// Paid reports whether the provider settled the session.
func (s *CheckoutSession) Paid() bool {
	return s.PaymentStatus == string(stripe.CheckoutSessionPaymentStatusPaid)
}

// StripeCheckout creates and retrieves hosted checkout sessions through
// Stripe. Redirect URLs are built from the configured site domain.
type StripeCheckout struct {
	siteDomain string
}

// InitStripe sets the process-wide Stripe key and returns the checkout
// client.
func InitStripe(secretKey, siteDomain string) (*StripeCheckout, error) {
	if secretKey == "" {
		return nil, fmt.Errorf("STRIPE_SECRET not set")
	}
	stripe.Key = secretKey
	return &StripeCheckout{siteDomain: siteDomain}, nil
}

// CreateSession requests a hosted checkout session with a single line item.
// The parcel identity rides along as session metadata for verification.
func (s *StripeCheckout) CreateSession(ctx context.Context, req CheckoutRequest) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.CustomerEmail),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(req.Amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ParcelName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(s.siteDomain + "/payment-success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:  stripe.String(s.siteDomain + "/payment-cancelled"),
	}
	params.Context = ctx
	params.AddMetadata("parcelId", req.ParcelID)
	params.AddMetadata("parcelName", req.ParcelName)

	sess, err := session.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return fromStripeSession(sess), nil
}

// RetrieveSession fetches the current state of a checkout session.
func (s *StripeCheckout) RetrieveSession(ctx context.Context, id string) (*CheckoutSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve checkout session: %w", err)
	}

	return fromStripeSession(sess), nil
}

func fromStripeSession(sess *stripe.CheckoutSession) *CheckoutSession {
	out := &CheckoutSession{
		ID:            sess.ID,
		URL:           sess.URL,
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
		CustomerEmail: sess.CustomerEmail,
		Metadata:      sess.Metadata,
	}
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		out.CustomerEmail = sess.CustomerDetails.Email
	}
	if sess.PaymentIntent != nil {
		out.PaymentIntentID = sess.PaymentIntent.ID
	}
	return out
}
