package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/domain/repository"
)

type kvProductRepository struct {
	kv  repository.KeyValueStore
	key string
}

func NewKVProductRepository(kv repository.KeyValueStore, keys Keys) repository.ProductRepository {
	return &kvProductRepository{
		kv:  kv,
		key: keys.Products,
	}
}

func (r *kvProductRepository) List(ctx context.Context) []entity.Product {
	return loadCollection[entity.Product](ctx, r.kv, r.key)
}

func (r *kvProductRepository) Save(ctx context.Context, products []entity.Product) error {
	return saveCollection(ctx, r.kv, r.key, products)
}

func (r *kvProductRepository) Add(ctx context.Context, product entity.Product) error {
	products := r.List(ctx)
	products = append([]entity.Product{product}, products...)
	return r.Save(ctx, products)
}

func (r *kvProductRepository) FindByID(ctx context.Context, id string) (*entity.Product, bool) {
	products := r.List(ctx)
	idx := findIndex(products, func(p entity.Product) bool { return p.ID == id })
	if idx < 0 {
		return nil, false
	}
	return &products[idx], true
}
