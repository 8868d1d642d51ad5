package product

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
)

// --- mocks ---

type mockProductStore struct{ mock.Mock }

func (m *mockProductStore) Put(ctx context.Context, p *domain.Product) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockProductStore) Get(ctx context.Context, productID string) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if p, _ := args.Get(0).(*domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductStore) Scan(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if p, _ := args.Get(0).([]domain.Product); p != nil {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockProductStore) Update(ctx context.Context, productID string, updates map[string]interface{}) error {
	return m.Called(ctx, productID, updates).Error(0)
}
func (m *mockProductStore) HardDelete(ctx context.Context, productID string) error {
	return m.Called(ctx, productID).Error(0)
}

type mockObjectStore struct{ mock.Mock }

func (m *mockObjectStore) Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func fixedContentType(string) string { return "image/png" }

func newTestService(repo *mockProductStore, images *mockObjectStore) Service {
	return NewService(repo, images, fixedContentType)
}

func strPtr(s string) *string { return &s }

// --- List / Get ---

func TestList_SetsInStock(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Scan", mock.Anything).Return([]domain.Product{
		{ProductID: "p1", Quantity: 3},
		{ProductID: "p2", Quantity: 0},
	}, nil)

	svc := newTestService(repo, nil)
	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.True(t, products[0].InStock)
	assert.False(t, products[1].InStock)
}

func TestGet_NotFound(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := newTestService(repo, nil)
	_, err := svc.Get(context.Background(), "missing")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

// --- Create ---

func TestCreate_HappyPath(t *testing.T) {
	repo := &mockProductStore{}
	var stored *domain.Product
	repo.On("Put", mock.Anything, mock.AnythingOfType("*domain.Product")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*domain.Product) }).
		Return(nil)

	svc := newTestService(repo, nil)
	p, err := svc.Create(context.Background(), domain.CreateProductRequest{
		Name:         "Oversize Hoodie",
		Price:        4999,
		Brand:        "IRONIC",
		Size:         "L",
		Quantity:     10,
		MainImageURL: "https://img.example/main.png",
		CartImageURL: "https://img.example/cart.png",
		Category:     "Hoodie",
	})

	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.ProductID)
	assert.Equal(t, int64(4999), stored.Price)
	assert.True(t, p.InStock)
}

// --- Update ---

func TestUpdate_NotFound(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := newTestService(repo, nil)
	_, err := svc.Update(context.Background(), "missing", domain.UpdateProductRequest{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}

func TestUpdate_InvalidCategory(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1"}, nil)

	svc := newTestService(repo, nil)
	_, err := svc.Update(context.Background(), "p1", domain.UpdateProductRequest{
		Category: strPtr("Sneaker"),
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdate_AlwaysWritesBestSellerFlag(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1", IsBestSeller: true}, nil)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(m map[string]interface{}) bool {
		v, ok := m[fieldIsBestSeller]
		return ok && v == false
	})).Return(nil)

	svc := newTestService(repo, nil)
	_, err := svc.Update(context.Background(), "p1", domain.UpdateProductRequest{})
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1", Quantity: 5}, nil)
	price := int64(5999)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(m map[string]interface{}) bool {
		return m[fieldPrice] == price && m[fieldName] == "Renamed"
	})).Return(nil)

	svc := newTestService(repo, nil)
	_, err := svc.Update(context.Background(), "p1", domain.UpdateProductRequest{
		Name:  strPtr("Renamed"),
		Price: &price,
	})
	require.NoError(t, err)
}

// --- Delete ---

func TestDelete_NotFound(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "missing").Return(nil, domain.ErrNotFound)

	svc := newTestService(repo, nil)
	err := svc.Delete(context.Background(), "missing")
	require.Error(t, err)
	repo.AssertNotCalled(t, "HardDelete", mock.Anything, mock.Anything)
}

func TestDelete_HappyPath(t *testing.T) {
	repo := &mockProductStore{}
	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1"}, nil)
	repo.On("HardDelete", mock.Anything, "p1").Return(nil)

	svc := newTestService(repo, nil)
	require.NoError(t, svc.Delete(context.Background(), "p1"))
	repo.AssertExpectations(t)
}

// --- UploadImage ---

func TestUploadImage_InvalidSlot(t *testing.T) {
	svc := newTestService(&mockProductStore{}, &mockObjectStore{})
	_, err := svc.UploadImage(context.Background(), "p1", "thumbnail", "a.png", strings.NewReader("x"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrBadRequest))
}

func TestUploadImage_HappyPath(t *testing.T) {
	repo := &mockProductStore{}
	images := &mockObjectStore{}

	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1"}, nil)
	images.On("Upload", mock.Anything, "products/p1/cart-a.png", mock.Anything, "image/png").
		Return("https://bucket.s3.us-east-1.amazonaws.com/products/p1/cart-a.png", nil)
	repo.On("Update", mock.Anything, "p1", mock.MatchedBy(func(m map[string]interface{}) bool {
		return m[fieldCartImageURL] == "https://bucket.s3.us-east-1.amazonaws.com/products/p1/cart-a.png"
	})).Return(nil)

	svc := newTestService(repo, images)
	_, err := svc.UploadImage(context.Background(), "p1", ImageSlotCart, "a.png", strings.NewReader("x"))
	require.NoError(t, err)
	images.AssertExpectations(t)
	repo.AssertExpectations(t)
}

func TestUploadImage_UploadFailure(t *testing.T) {
	repo := &mockProductStore{}
	images := &mockObjectStore{}

	repo.On("Get", mock.Anything, "p1").Return(&domain.Product{ProductID: "p1"}, nil)
	images.On("Upload", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return("", errors.New("s3 down"))

	svc := newTestService(repo, images)
	_, err := svc.UploadImage(context.Background(), "p1", ImageSlotMain, "a.png", strings.NewReader("x"))
	require.Error(t, err)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
