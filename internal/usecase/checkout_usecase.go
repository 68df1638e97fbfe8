package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fleamarket/internal/domain/entity"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/logger"
)

// Checkout simulates placing an order for the current cart. It waits for the
// configured processing delay, then removes the ordered entries from the cart.
// Items added during the delay stay in the cart. No payment is taken. If ctx
// ends during the delay, or the cart lost ordered items meanwhile, the cart is
// left untouched.
func (uc *StoreUseCase) Checkout(ctx context.Context, shipping entity.ShippingInfo) (*entity.Order, error) {
	items := uc.Cart()
	if len(items) == 0 {
		return nil, errors.BadRequest("Cart is empty", nil)
	}

	subtotal := cartTotal(items)
	order := &entity.Order{
		ID:          uuid.NewString(),
		Items:       items,
		ItemCount:   cartItemCount(items),
		Subtotal:    subtotal,
		ShippingFee: uc.shippingFee,
		Total:       subtotal + uc.shippingFee,
		Shipping:    shipping,
	}

	if uc.checkoutDelay > 0 {
		timer := time.NewTimer(uc.checkoutDelay)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			logger.Warn("Checkout cancelled before completion: %v", ctx.Err())
			return nil, ctx.Err()
		}
	}

	err := uc.mutate(ctx, entity.CollectionCart, func() (bool, error) {
		if err := uc.cartRepo.RemoveOrdered(ctx, items); err != nil {
			return false, err
		}
		return true, nil
	})
	if err != nil {
		logger.Warn("Checkout %s aborted: %v", order.ID, err)
		return nil, err
	}

	order.PlacedAt = uc.now()
	logger.Info("Order %s placed: %d item(s), total %.2f", order.ID, order.ItemCount, order.Total)
	return order, nil
}
