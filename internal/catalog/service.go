package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aryangupta0810/ecart-backend/pkg/db/models"
	pkgerrors "github.com/aryangupta0810/ecart-backend/pkg/errors"
	"gorm.io/gorm"
)

// DefaultRelatedLimit bounds related-product listings when no limit is given.
const DefaultRelatedLimit = 4

// Service exposes read-only catalog operations.
type Service interface {
	ListProducts(ctx context.Context, filter ProductFilter) ([]ProductDTO, error)
	GetProduct(ctx context.Context, id string) (*ProductDTO, error)
	ListCollections(ctx context.Context) ([]CollectionDTO, error)
	GetCollection(ctx context.Context, id string) (*CollectionDTO, error)
	SearchProducts(ctx context.Context, query string) ([]ProductDTO, error)
	RelatedProducts(ctx context.Context, id string, limit int) ([]ProductDTO, error)
}

// service implements the catalog service.
type service struct {
	repo *Repository
}

// NewService constructs a catalog service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

// ListProducts applies the filter predicates and sort to the full listing.
// The category predicate narrows the scan at the database; tag and search
// predicates run in Go so their substring semantics stay independent of
// database collation.
func (s *service) ListProducts(ctx context.Context, filter ProductFilter) ([]ProductDTO, error) {
	products, err := s.listForCategory(ctx, filter.Category)
	if err != nil {
		return nil, err
	}

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if filter.PriceMinCents != nil && p.PriceCents < *filter.PriceMinCents {
			continue
		}
		if filter.PriceMaxCents != nil && p.PriceCents > *filter.PriceMaxCents {
			continue
		}
		if len(filter.Tags) > 0 && !hasAnyTag(p.Tags, filter.Tags) {
			continue
		}
		if filter.AvailableOnly && !p.Available {
			continue
		}
		if filter.Search != "" && !matchesQuery(&p, filter.Search) {
			continue
		}
		out = append(out, p)
	}
	sortProducts(out, filter.Sort)
	return NewProductDTOs(out), nil
}

// listForCategory narrows the scan to one category when the filter names one.
func (s *service) listForCategory(ctx context.Context, category string) ([]models.Product, error) {
	if category == "" {
		return s.repo.ListProducts(ctx)
	}
	return s.repo.ListByCategory(ctx, category)
}

// GetProduct loads a single product by identifier.
func (s *service) GetProduct(ctx context.Context, id string) (*ProductDTO, error) {
	product, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}
	return NewProductDTO(product), nil
}

// ListCollections returns every collection in catalog order.
func (s *service) ListCollections(ctx context.Context) ([]CollectionDTO, error) {
	collections, err := s.repo.ListCollections(ctx)
	if err != nil {
		return nil, err
	}
	return NewCollectionDTOs(collections), nil
}

// GetCollection loads a single collection by identifier.
func (s *service) GetCollection(ctx context.Context, id string) (*CollectionDTO, error) {
	collection, err := s.repo.FindCollectionByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "collection not found")
		}
		return nil, err
	}
	return NewCollectionDTO(collection), nil
}

// SearchProducts matches the query as a case-insensitive substring of the
// title, description, or any tag. A blank query yields no suggestions.
func (s *service) SearchProducts(ctx context.Context, query string) ([]ProductDTO, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return []ProductDTO{}, nil
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if matchesQuery(&p, trimmed) {
			out = append(out, p)
		}
	}
	return NewProductDTOs(out), nil
}

// RelatedProducts lists other products sharing the category or any tag with
// the given product, in catalog order, truncated to limit.
func (s *service) RelatedProducts(ctx context.Context, id string, limit int) ([]ProductDTO, error) {
	if limit <= 0 {
		limit = DefaultRelatedLimit
	}

	target, err := s.repo.FindProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
		}
		return nil, err
	}

	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]models.Product, 0, limit)
	for _, p := range products {
		if p.ID == target.ID {
			continue
		}
		if p.Category != target.Category && !hasAnyTag(p.Tags, target.Tags) {
			continue
		}
		out = append(out, p)
		if len(out) == limit {
			break
		}
	}
	return NewProductDTOs(out), nil
}

// matchesQuery reports whether the query occurs in the title, description,
// or any tag, ignoring case.
func matchesQuery(p *models.Product, query string) bool {
	needle := strings.ToLower(query)
	if strings.Contains(strings.ToLower(p.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), needle) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), needle) {
			return true
		}
	}
	return false
}
