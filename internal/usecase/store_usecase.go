package usecase

import (
	"context"
	"sync"
	"time"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/domain/repository"
	"fleamarket/pkg/logger"
)

type StoreOptions struct {
	// SeedCatalog fills an empty product collection with the sample catalog on Initialize.
	SeedCatalog   bool
	ShippingFee   float64
	CheckoutDelay time.Duration
	// Clock defaults to time.Now in UTC.
	Clock func() time.Time
}

// StoreUseCase is the session object the presentation layer talks to. It keeps
// an in-memory mirror of the three persisted collections and refreshes it from
// the repositories after every write.
type StoreUseCase struct {
	productRepo repository.ProductRepository
	cartRepo    repository.CartRepository
	chatRepo    repository.ChatRepository
	notifier    Notifier

	user          entity.User
	seedCatalog   bool
	shippingFee   float64
	checkoutDelay time.Duration
	now           func() time.Time

	// mu serializes every load-modify-save cycle and guards the mirror.
	mu         sync.RWMutex
	products   []entity.Product
	cart       []entity.CartEntry
	chats      []entity.ChatThread
	chatByPair map[string]string
}

func NewStoreUseCase(
	productRepo repository.ProductRepository,
	cartRepo repository.CartRepository,
	chatRepo repository.ChatRepository,
	notifier Notifier,
	opts StoreOptions,
) *StoreUseCase {
	if notifier == nil {
		notifier = noopNotifier{}
	}
	clock := opts.Clock
	if clock == nil {
		clock = func() time.Time { return time.Now().UTC() }
	}

	return &StoreUseCase{
		productRepo:   productRepo,
		cartRepo:      cartRepo,
		chatRepo:      chatRepo,
		notifier:      notifier,
		user:          entity.CurrentUser(),
		seedCatalog:   opts.SeedCatalog,
		shippingFee:   opts.ShippingFee,
		checkoutDelay: opts.CheckoutDelay,
		now:           clock,
		products:      []entity.Product{},
		cart:          []entity.CartEntry{},
		chats:         []entity.ChatThread{},
		chatByPair:    make(map[string]string),
	}
}

// Initialize loads every collection into the mirror. When the product
// collection is empty and seeding is enabled it writes the sample catalog
// first; once products exist this never seeds again.
func (uc *StoreUseCase) Initialize(ctx context.Context) error {
	uc.mu.Lock()
	defer uc.mu.Unlock()

	if uc.seedCatalog && len(uc.productRepo.List(ctx)) == 0 {
		catalog := SampleCatalog(uc.now())
		if err := uc.productRepo.Save(ctx, catalog); err != nil {
			return err
		}
		logger.Info("Seeded product catalog with %d items", len(catalog))
	}

	uc.refreshLocked(ctx, entity.CollectionProducts, entity.CollectionCart, entity.CollectionChats)
	logger.Info("Store initialized: %d products, %d cart entries, %d chats", len(uc.products), len(uc.cart), len(uc.chats))
	return nil
}

// Reload re-reads all collections from storage.
func (uc *StoreUseCase) Reload(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.refreshLocked(ctx, entity.CollectionProducts, entity.CollectionCart, entity.CollectionChats)
}

func (uc *StoreUseCase) CurrentUser() entity.User {
	return uc.user
}

// mutate runs fn inside the critical section. When fn reports a change, the
// affected collection is re-read and a change event is published after the
// lock is released.
func (uc *StoreUseCase) mutate(ctx context.Context, collection string, fn func() (bool, error)) error {
	uc.mu.Lock()
	changed, err := fn()
	if !changed && err == nil {
		uc.mu.Unlock()
		return nil
	}
	uc.refreshLocked(ctx, collection)
	event := uc.changeEventLocked(collection)
	uc.mu.Unlock()

	if err != nil {
		return err
	}
	uc.notifier.Publish(event)
	return nil
}

func (uc *StoreUseCase) refreshLocked(ctx context.Context, collections ...string) {
	for _, collection := range collections {
		switch collection {
		case entity.CollectionProducts:
			uc.products = uc.productRepo.List(ctx)
		case entity.CollectionCart:
			uc.cart = uc.cartRepo.List(ctx)
		case entity.CollectionChats:
			uc.chats = uc.chatRepo.List(ctx)
			uc.rebuildChatIndexLocked()
		}
	}
}

func (uc *StoreUseCase) rebuildChatIndexLocked() {
	index := make(map[string]string, len(uc.chats))
	for _, chat := range uc.chats {
		key := chat.PairKey()
		// First thread wins, matching a front-to-back search.
		if _, exists := index[key]; !exists {
			index[key] = chat.ChatID
		}
	}
	uc.chatByPair = index
}

func (uc *StoreUseCase) changeEventLocked(collection string) entity.ChangeEvent {
	return entity.ChangeEvent{
		Collection:    collection,
		CartItemCount: cartItemCount(uc.cart),
		CartTotal:     cartTotal(uc.cart),
		UnreadCount:   unreadCount(uc.chats),
		At:            uc.now(),
	}
}
