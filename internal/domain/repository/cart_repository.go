package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
)

// CartRepository mutators report whether the stored cart was rewritten.
type CartRepository interface {
	List(ctx context.Context) []entity.CartEntry
	Save(ctx context.Context, entries []entity.CartEntry) error

	// AddItem is a no-op for unknown products and increments an existing entry.
	// The quantity is not checked.
	AddItem(ctx context.Context, productID string, quantity int) (bool, error)
	RemoveItem(ctx context.Context, productID string) (bool, error)
	// SetQuantity overwrites the quantity of an existing entry; no-op if absent.
	SetQuantity(ctx context.Context, productID string, quantity int) (bool, error)
	Clear(ctx context.Context) (bool, error)
	// RemoveOrdered subtracts the ordered quantities and drops entries that reach
	// zero. Anything else in the cart is kept. It fails with CONFLICT, leaving
	// the cart untouched, when the cart no longer holds the full order.
	RemoveOrdered(ctx context.Context, ordered []entity.CartEntry) error
}
