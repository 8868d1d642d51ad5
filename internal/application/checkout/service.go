package checkout

import (
	"fmt"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
	stripeinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/stripe"
)

type Service interface {
	CreateSession(lines []stripeinfra.CartLine) (string, error)
}

type sessionCreator interface {
	CreateSession(lines []stripeinfra.CartLine) (string, error)
}

type service struct {
	stripe sessionCreator
}

func NewService(stripe sessionCreator) Service {
	return &service{stripe: stripe}
}

// CreateSession validates the cart and returns the hosted checkout URL.
// Prices arrive already denominated in cents; no conversion happens here.
func (s *service) CreateSession(lines []stripeinfra.CartLine) (string, error) {
	if len(lines) == 0 {
		return "", fmt.Errorf("no products provided: %w", domain.ErrBadRequest)
	}
	return s.stripe.CreateSession(lines)
}
