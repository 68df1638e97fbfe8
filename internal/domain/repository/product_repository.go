package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
)

type ProductRepository interface {
	List(ctx context.Context) []entity.Product
	Save(ctx context.Context, products []entity.Product) error
	// Add prepends, keeping the collection newest-first.
	Add(ctx context.Context, product entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, bool)
}
