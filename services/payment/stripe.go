package payment

import (
	"context"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// StripeGateway creates PaymentIntents through the Stripe API.
type StripeGateway struct {
	api *client.API
}

// NewStripeGateway returns nil when key is empty so callers can treat the gateway as unconfigured.
func NewStripeGateway(key string) *StripeGateway {
	if key == "" {
		return nil
	}
	api := &client.API{}
	api.Init(key, nil)
	return &StripeGateway{api: api}
}

func (g *StripeGateway) CreateIntent(ctx context.Context, amountMinor int64, currency string, metadata map[string]string) (*IntentResult, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(amountMinor),
		Currency: stripe.String(strings.ToLower(currency)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	for k, v := range metadata {
		params.AddMetadata(k, v)
	}
	pi, err := g.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &IntentResult{
		ID:        pi.ID,
		Succeeded: pi.Status == stripe.PaymentIntentStatusSucceeded,
	}, nil
}
