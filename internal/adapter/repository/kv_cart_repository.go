package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/domain/repository"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/logger"
)

type kvCartRepository struct {
	kv          repository.KeyValueStore
	key         string
	productRepo repository.ProductRepository
}

func NewKVCartRepository(kv repository.KeyValueStore, keys Keys, productRepo repository.ProductRepository) repository.CartRepository {
	return &kvCartRepository{
		kv:          kv,
		key:         keys.Cart,
		productRepo: productRepo,
	}
}

func (r *kvCartRepository) List(ctx context.Context) []entity.CartEntry {
	return loadCollection[entity.CartEntry](ctx, r.kv, r.key)
}

func (r *kvCartRepository) Save(ctx context.Context, entries []entity.CartEntry) error {
	return saveCollection(ctx, r.kv, r.key, entries)
}

func (r *kvCartRepository) AddItem(ctx context.Context, productID string, quantity int) (bool, error) {
	product, ok := r.productRepo.FindByID(ctx, productID)
	if !ok {
		logger.Debug("AddItem: product %s not found, ignoring", productID)
		return false, nil
	}

	cart := r.List(ctx)
	idx := findIndex(cart, func(e entity.CartEntry) bool { return e.ProductID == productID })
	if idx >= 0 {
		cart[idx].Quantity += quantity
	} else {
		cart = append(cart, entity.CartEntry{
			ProductID: productID,
			Quantity:  quantity,
			Product:   product.Clone(),
		})
	}

	return r.commit(ctx, cart)
}

func (r *kvCartRepository) RemoveItem(ctx context.Context, productID string) (bool, error) {
	cart := r.List(ctx)
	kept := make([]entity.CartEntry, 0, len(cart))
	for _, entry := range cart {
		if entry.ProductID != productID {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(cart) {
		return false, nil
	}
	return r.commit(ctx, kept)
}

func (r *kvCartRepository) SetQuantity(ctx context.Context, productID string, quantity int) (bool, error) {
	cart := r.List(ctx)
	idx := findIndex(cart, func(e entity.CartEntry) bool { return e.ProductID == productID })
	if idx < 0 || cart[idx].Quantity == quantity {
		return false, nil
	}

	cart[idx].Quantity = quantity
	return r.commit(ctx, cart)
}

func (r *kvCartRepository) Clear(ctx context.Context) (bool, error) {
	if len(r.List(ctx)) == 0 {
		return false, nil
	}
	return r.commit(ctx, []entity.CartEntry{})
}

func (r *kvCartRepository) RemoveOrdered(ctx context.Context, ordered []entity.CartEntry) error {
	cart := r.List(ctx)
	for _, item := range ordered {
		idx := findIndex(cart, func(e entity.CartEntry) bool { return e.ProductID == item.ProductID })
		if idx < 0 || cart[idx].Quantity < item.Quantity {
			return errors.Conflict("Cart changed during checkout", nil)
		}
		cart[idx].Quantity -= item.Quantity
	}

	kept := make([]entity.CartEntry, 0, len(cart))
	for _, entry := range cart {
		if entry.Quantity > 0 {
			kept = append(kept, entry)
		}
	}
	return r.Save(ctx, kept)
}

func (r *kvCartRepository) commit(ctx context.Context, cart []entity.CartEntry) (bool, error) {
	if err := r.Save(ctx, cart); err != nil {
		return false, err
	}
	return true, nil
}
