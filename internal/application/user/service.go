package user

import (
	"context"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName         = "name"
	fieldPhone        = "phone"
	fieldAddressLine1 = "address_line1"
	fieldAddressLine2 = "address_line2"
	fieldCity         = "city"
	fieldPostalCode   = "postal_code"
	fieldCountry      = "country"
)

type Service interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error)
}

type userStore interface {
	Get(ctx context.Context, userID string) (*domain.User, error)
	Update(ctx context.Context, userID string, updates map[string]interface{}) error
}

type service struct {
	repo userStore
}

func NewService(repo userStore) Service {
	return &service{repo: repo}
}

func (s *service) Get(ctx context.Context, userID string) (*domain.User, error) {
	return s.repo.Get(ctx, userID)
}

// UpdateProfile applies a partial update to profile fields only. Email,
// password and the admin flag are not reachable through this path.
func (s *service) UpdateProfile(ctx context.Context, userID string, req domain.UpdateProfileRequest) (*domain.User, error) {
	updates := map[string]interface{}{}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Phone != nil {
		updates[fieldPhone] = *req.Phone
	}
	if req.AddressLine1 != nil {
		updates[fieldAddressLine1] = *req.AddressLine1
	}
	if req.AddressLine2 != nil {
		updates[fieldAddressLine2] = *req.AddressLine2
	}
	if req.City != nil {
		updates[fieldCity] = *req.City
	}
	if req.PostalCode != nil {
		updates[fieldPostalCode] = *req.PostalCode
	}
	if req.Country != nil {
		updates[fieldCountry] = *req.Country
	}
	if len(updates) == 0 {
		return s.repo.Get(ctx, userID)
	}
	if err := s.repo.Update(ctx, userID, updates); err != nil {
		return nil, err
	}
	return s.repo.Get(ctx, userID)
}
