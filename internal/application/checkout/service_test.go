package checkout

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
	stripeinfra "github.com/HarmanGIT10/Ironic-gym-backend/internal/infrastructure/stripe"
)

type mockSessionCreator struct{ mock.Mock }

func (m *mockSessionCreator) CreateSession(lines []stripeinfra.CartLine) (string, error) {
	args := m.Called(lines)
	return args.String(0), args.Error(1)
}

func TestCreateSession_EmptyCart(t *testing.T) {
	sc := &mockSessionCreator{}
	svc := NewService(sc)

	_, err := svc.CreateSession(nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	sc.AssertNotCalled(t, "CreateSession", mock.Anything)
}

func TestCreateSession_HappyPath(t *testing.T) {
	sc := &mockSessionCreator{}
	lines := []stripeinfra.CartLine{{Name: "Oversize Hoodie", Price: 4999, Quantity: 2}}
	sc.On("CreateSession", lines).Return("https://checkout.stripe.com/pay/cs_test", nil)

	svc := NewService(sc)
	url, err := svc.CreateSession(lines)
	require.NoError(t, err)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test", url)
}

func TestCreateSession_StripeFailure(t *testing.T) {
	sc := &mockSessionCreator{}
	sc.On("CreateSession", mock.Anything).Return("", errors.New("stripe down"))

	svc := NewService(sc)
	_, err := svc.CreateSession([]stripeinfra.CartLine{{Name: "Tee", Price: 1999, Quantity: 1}})
	require.Error(t, err)
}
