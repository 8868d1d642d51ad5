package stripeinfra

import (
	"fmt"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/config"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
)

// CartLine is one product line from the storefront cart.
type CartLine struct {
	Name     string `json:"name" validate:"required"`
	Image    string `json:"image"`
	Price    int64  `json:"price" validate:"required,gt=0"` // unit price, cents
	Quantity int64  `json:"quantity" validate:"required,gt=0"`
}

// Checkout creates Stripe hosted-checkout sessions.
type Checkout struct {
	api        *client.API
	currency   string
	successURL string
	cancelURL  string
}

// NewCheckout builds a Checkout around an explicitly keyed Stripe client.
// The package-global stripe.Key is deliberately not used.
func NewCheckout(cfg *config.Config) *Checkout {
	api := &client.API{}
	api.Init(cfg.StripeSecretKey, nil)
	return &Checkout{
		api:        api,
		currency:   cfg.StripeCurrency,
		successURL: cfg.StripeSuccessURL,
		cancelURL:  cfg.StripeCancelURL,
	}
}

// CreateSession builds a payment-mode checkout session from the cart lines
// and returns the hosted payment page URL.
func (c *Checkout) CreateSession(lines []CartLine) (string, error) {
	items := make([]*stripe.CheckoutSessionLineItemParams, 0, len(lines))
	for _, l := range lines {
		product := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(l.Name),
		}
		if l.Image != "" {
			product.Images = stripe.StringSlice([]string{l.Image})
		}
		items = append(items, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(c.currency),
				ProductData: product,
				UnitAmount:  stripe.Int64(l.Price),
			},
			Quantity: stripe.Int64(l.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          items,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(c.successURL),
		CancelURL:          stripe.String(c.cancelURL),
	}

	sess, err := c.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("create checkout session: %w", err)
	}
	return sess.URL, nil
}
