package product

import (
	"context"
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/HarmanGIT10/Ironic-gym-backend/internal/domain"
	"github.com/HarmanGIT10/Ironic-gym-backend/internal/pkg/id"
)

// DynamoDB attribute names used in partial update maps.
const (
	fieldName         = "name"
	fieldPrice        = "price"
	fieldBrand        = "brand"
	fieldSize         = "size"
	fieldQuantity     = "quantity"
	fieldMainImageURL = "main_image_url"
	fieldCartImageURL = "cart_image_url"
	fieldCategory     = "category"
	fieldIsBestSeller = "is_best_seller"
)

// Image slots on a product.
const (
	ImageSlotMain = "main"
	ImageSlotCart = "cart"
)

type Service interface {
	List(ctx context.Context) ([]domain.Product, error)
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error)
	Update(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error)
	Delete(ctx context.Context, productID string) error
	UploadImage(ctx context.Context, productID, slot, filename string, r io.Reader) (*domain.Product, error)
}

type productStore interface {
	Put(ctx context.Context, p *domain.Product) error
	Get(ctx context.Context, productID string) (*domain.Product, error)
	Scan(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, productID string, updates map[string]interface{}) error
	HardDelete(ctx context.Context, productID string) error
}

type objectStore interface {
	Upload(ctx context.Context, key string, r io.Reader, contentType string) (string, error)
}

type contentTypeFunc func(filename string) string

type service struct {
	repo        productStore
	images      objectStore
	contentType contentTypeFunc
}

func NewService(repo productStore, images objectStore, contentType contentTypeFunc) Service {
	return &service{repo: repo, images: images, contentType: contentType}
}

func (s *service) List(ctx context.Context) ([]domain.Product, error) {
	products, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	for i := range products {
		products[i].InStock = products[i].Quantity > 0
	}
	return products, nil
}

func (s *service) Get(ctx context.Context, productID string) (*domain.Product, error) {
	p, err := s.repo.Get(ctx, productID)
	if err != nil {
		return nil, err
	}
	p.InStock = p.Quantity > 0
	return p, nil
}

func (s *service) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	now := time.Now().UTC()
	p := &domain.Product{
		ProductID:    id.New(),
		Name:         req.Name,
		Price:        req.Price,
		Brand:        req.Brand,
		Size:         req.Size,
		Quantity:     req.Quantity,
		MainImageURL: req.MainImageURL,
		CartImageURL: req.CartImageURL,
		Category:     req.Category,
		IsBestSeller: req.IsBestSeller,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	p.InStock = p.Quantity > 0
	return p, nil
}

func (s *service) Update(ctx context.Context, productID string, req domain.UpdateProductRequest) (*domain.Product, error) {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}
	updates := map[string]interface{}{
		// Always written — the admin UI must be able to clear the flag.
		fieldIsBestSeller: req.IsBestSeller,
	}
	if req.Name != nil {
		updates[fieldName] = *req.Name
	}
	if req.Price != nil {
		updates[fieldPrice] = *req.Price
	}
	if req.Brand != nil {
		updates[fieldBrand] = *req.Brand
	}
	if req.Size != nil {
		updates[fieldSize] = *req.Size
	}
	if req.Quantity != nil {
		updates[fieldQuantity] = *req.Quantity
	}
	if req.MainImageURL != nil {
		updates[fieldMainImageURL] = *req.MainImageURL
	}
	if req.CartImageURL != nil {
		updates[fieldCartImageURL] = *req.CartImageURL
	}
	if req.Category != nil {
		if !slices.Contains(domain.ProductCategories, *req.Category) {
			return nil, fmt.Errorf("invalid category: %w", domain.ErrBadRequest)
		}
		updates[fieldCategory] = *req.Category
	}
	if err := s.repo.Update(ctx, productID, updates); err != nil {
		return nil, err
	}
	return s.Get(ctx, productID)
}

func (s *service) Delete(ctx context.Context, productID string) error {
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return err
	}
	return s.repo.HardDelete(ctx, productID)
}

// UploadImage stores the image in the object store and points the product's
// chosen image slot at the resulting URL.
func (s *service) UploadImage(ctx context.Context, productID, slot, filename string, r io.Reader) (*domain.Product, error) {
	if slot != ImageSlotMain && slot != ImageSlotCart {
		return nil, fmt.Errorf("image slot must be %q or %q: %w", ImageSlotMain, ImageSlotCart, domain.ErrBadRequest)
	}
	if _, err := s.repo.Get(ctx, productID); err != nil {
		return nil, err
	}
	key := fmt.Sprintf("products/%s/%s-%s", productID, slot, filename)
	url, err := s.images.Upload(ctx, key, r, s.contentType(filename))
	if err != nil {
		return nil, err
	}
	field := fieldMainImageURL
	if slot == ImageSlotCart {
		field = fieldCartImageURL
	}
	if err := s.repo.Update(ctx, productID, map[string]interface{}{field: url}); err != nil {
		return nil, err
	}
	return s.Get(ctx, productID)
}
