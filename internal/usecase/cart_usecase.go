package usecase

import (
	"context"

	"fleamarket/internal/domain/entity"
	"fleamarket/pkg/logger"
)

// AddToCart adds quantity units of a product. Unknown products and non-positive
// quantities are ignored; an existing entry has its quantity increased instead
// of being duplicated.
func (uc *StoreUseCase) AddToCart(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		logger.Debug("AddToCart: ignoring quantity %d for %s", quantity, productID)
		return nil
	}

	return uc.mutate(ctx, entity.CollectionCart, func() (bool, error) {
		return uc.cartRepo.AddItem(ctx, productID, quantity)
	})
}

func (uc *StoreUseCase) RemoveFromCart(ctx context.Context, productID string) error {
	return uc.mutate(ctx, entity.CollectionCart, func() (bool, error) {
		return uc.cartRepo.RemoveItem(ctx, productID)
	})
}

// UpdateCartQuantity sets the quantity of an entry to exactly quantity. A zero
// or negative quantity removes the entry.
func (uc *StoreUseCase) UpdateCartQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity <= 0 {
		logger.Debug("UpdateCartQuantity: quantity %d for %s, removing entry", quantity, productID)
		return uc.RemoveFromCart(ctx, productID)
	}

	return uc.mutate(ctx, entity.CollectionCart, func() (bool, error) {
		return uc.cartRepo.SetQuantity(ctx, productID, quantity)
	})
}

func (uc *StoreUseCase) ClearCart(ctx context.Context) error {
	return uc.mutate(ctx, entity.CollectionCart, func() (bool, error) {
		return uc.cartRepo.Clear(ctx)
	})
}

func (uc *StoreUseCase) Cart() []entity.CartEntry {
	uc.mu.RLock()
	defer uc.mu.RUnlock()

	cart := make([]entity.CartEntry, len(uc.cart))
	for i, e := range uc.cart {
		cart[i] = e.Clone()
	}
	return cart
}

func (uc *StoreUseCase) GetCartTotal() float64 {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return cartTotal(uc.cart)
}

// GetCartItemCount sums quantities, so two of one product count as two.
func (uc *StoreUseCase) GetCartItemCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return cartItemCount(uc.cart)
}

func cartTotal(cart []entity.CartEntry) float64 {
	total := 0.0
	for _, e := range cart {
		total += e.Subtotal()
	}
	return total
}

func cartItemCount(cart []entity.CartEntry) int {
	count := 0
	for _, e := range cart {
		count += e.Quantity
	}
	return count
}
