package usecase

import (
	"context"
	"strings"

	"fleamarket/internal/domain/entity"
)

// AddProduct stores a new listing at the front of the catalog. Input is not
// validated here; the caller is expected to have done it.
func (uc *StoreUseCase) AddProduct(ctx context.Context, product entity.Product) error {
	return uc.mutate(ctx, entity.CollectionProducts, func() (bool, error) {
		return true, uc.productRepo.Add(ctx, product)
	})
}

func (uc *StoreUseCase) GetProductByID(ctx context.Context, id string) (*entity.Product, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.productRepo.FindByID(ctx, id)
}

// Products returns a copy of the mirrored catalog, newest first.
func (uc *StoreUseCase) Products() []entity.Product {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	products := make([]entity.Product, len(uc.products))
	for i, p := range uc.products {
		products[i] = p.Clone()
	}
	return products
}

// SearchProducts filters the catalog by a case-insensitive title substring and
// an exact category. An empty query, or an empty or "all" category, disables
// that filter.
func (uc *StoreUseCase) SearchProducts(query string, category string) []entity.Product {
	query = strings.ToLower(strings.TrimSpace(query))
	category = strings.TrimSpace(category)
	if category == "all" {
		category = ""
	}

	uc.mu.RLock()
	defer uc.mu.RUnlock()

	result := make([]entity.Product, 0, len(uc.products))
	for _, p := range uc.products {
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		if category != "" && string(p.Category) != category {
			continue
		}
		result = append(result, p.Clone())
	}
	return result
}
