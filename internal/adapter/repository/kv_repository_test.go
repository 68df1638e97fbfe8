package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/infrastructure/kvstore"
	apperrors "fleamarket/pkg/errors"
)

var fixedTime = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

// brokenStore fails every call.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) (string, bool, error) {
	return "", false, errors.New("disk unavailable")
}

func (brokenStore) Set(ctx context.Context, key string, value string) error {
	return errors.New("quota exceeded")
}

// countingStore counts writes to the wrapped store.
type countingStore struct {
	kvstore.Store
	sets int
}

func (s *countingStore) Set(ctx context.Context, key string, value string) error {
	s.sets++
	return s.Store.Set(ctx, key, value)
}

// failingWriteStore reads from the wrapped store and rejects every write.
type failingWriteStore struct {
	kvstore.Store
}

func (s *failingWriteStore) Set(ctx context.Context, key string, value string) error {
	return errors.New("quota exceeded")
}

func sampleProduct(id string, price float64) entity.Product {
	return entity.Product{
		ID:          id,
		Title:       "Item " + id,
		Description: "Description " + id,
		Price:       price,
		Condition:   entity.ConditionGood,
		Category:    entity.CategoryBooks,
		Images:      []string{"https://example.com/" + id + ".jpg"},
		Seller:      entity.Seller{ID: "seller_0", Name: "Ming", Avatar: "https://example.com/a.png", Rating: 4.8},
		CreatedAt:   fixedTime,
	}
}

func TestNewKeys(t *testing.T) {
	keys := NewKeys("demo:")
	assert.Equal(t, "demo:products", keys.Products)
	assert.Equal(t, "demo:cart", keys.Cart)
	assert.Equal(t, "demo:chats", keys.Chats)

	assert.Equal(t, Keys{Products: "products", Cart: "cart", Chats: "chats"}, NewKeys(""))
}

func TestProductRepositoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	repo := NewKVProductRepository(kvstore.NewMemoryStore(), NewKeys(""))

	assert.Empty(t, repo.List(ctx))
	assert.NotNil(t, repo.List(ctx))

	products := []entity.Product{sampleProduct("1", 100), sampleProduct("2", 200)}
	require.NoError(t, repo.Save(ctx, products))
	assert.Equal(t, products, repo.List(ctx))
}

func TestProductRepositoryAddPrepends(t *testing.T) {
	ctx := context.Background()
	repo := NewKVProductRepository(kvstore.NewMemoryStore(), NewKeys(""))

	require.NoError(t, repo.Save(ctx, []entity.Product{sampleProduct("1", 100)}))
	require.NoError(t, repo.Add(ctx, sampleProduct("2", 200)))

	products := repo.List(ctx)
	require.Len(t, products, 2)
	assert.Equal(t, "2", products[0].ID)
	assert.Equal(t, "1", products[1].ID)

	found, ok := repo.FindByID(ctx, "1")
	require.True(t, ok)
	assert.Equal(t, 100.0, found.Price)

	_, ok = repo.FindByID(ctx, "missing")
	assert.False(t, ok)
}

func TestLoadCollectionMalformedIsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	keys := NewKeys("")
	require.NoError(t, kv.Set(ctx, keys.Products, "{not json"))
	require.NoError(t, kv.Set(ctx, keys.Cart, "null"))

	assert.Equal(t, []entity.Product{}, NewKVProductRepository(kv, keys).List(ctx))
	assert.Equal(t, []entity.CartEntry{}, NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys)).List(ctx))
}

func TestLoadCollectionReadErrorIsEmpty(t *testing.T) {
	repo := NewKVChatRepository(brokenStore{}, NewKeys(""))
	assert.Equal(t, []entity.ChatThread{}, repo.List(context.Background()))
}

func TestSaveCollectionWriteError(t *testing.T) {
	repo := NewKVProductRepository(brokenStore{}, NewKeys(""))

	err := repo.Save(context.Background(), []entity.Product{sampleProduct("1", 100)})
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "INTERNAL_ERROR"))
}

func TestSaveNilCollectionWritesEmptyArray(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	keys := NewKeys("")

	require.NoError(t, NewKVChatRepository(kv, keys).Save(ctx, nil))
	raw, found, err := kv.Get(ctx, keys.Chats)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "[]", raw)
}

func newCartFixture(t *testing.T) (context.Context, *kvstore.MemoryStore, Keys) {
	t.Helper()
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	keys := NewKeys("")
	require.NoError(t, NewKVProductRepository(kv, keys).Save(ctx, []entity.Product{
		sampleProduct("1", 100),
		sampleProduct("2", 250),
	}))
	return ctx, kv, keys
}

func TestCartAddItem(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	repo := NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys))

	for _, add := range []struct {
		id  string
		qty int
	}{{"1", 1}, {"1", 2}, {"2", 1}} {
		changed, err := repo.AddItem(ctx, add.id, add.qty)
		require.NoError(t, err)
		assert.True(t, changed)
	}

	cart := repo.List(ctx)
	require.Len(t, cart, 2)
	assert.Equal(t, "1", cart[0].ProductID)
	assert.Equal(t, 3, cart[0].Quantity)
	assert.Equal(t, sampleProduct("1", 100), cart[0].Product)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestCartAddUnknownProductIsNoop(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	repo := NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys))

	changed, err := repo.AddItem(ctx, "missing", 1)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Empty(t, repo.List(ctx))

	_, found, err := kv.Get(ctx, keys.Cart)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCartSnapshotIsIndependentOfCatalog(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	products := NewKVProductRepository(kv, keys)
	repo := NewKVCartRepository(kv, keys, products)

	_, err := repo.AddItem(ctx, "1", 1)
	require.NoError(t, err)
	require.NoError(t, products.Save(ctx, []entity.Product{sampleProduct("1", 999)}))

	assert.Equal(t, 100.0, repo.List(ctx)[0].Product.Price)
}

func TestCartSetQuantityRemoveClear(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	repo := NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys))

	_, err := repo.AddItem(ctx, "1", 1)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, "2", 1)
	require.NoError(t, err)

	changed, err := repo.SetQuantity(ctx, "2", 5)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Equal(t, 5, repo.List(ctx)[1].Quantity)

	changed, err = repo.SetQuantity(ctx, "2", 5)
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.SetQuantity(ctx, "missing", 5)
	require.NoError(t, err)
	assert.False(t, changed)
	assert.Len(t, repo.List(ctx), 2)

	changed, err = repo.RemoveItem(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.RemoveItem(ctx, "1")
	require.NoError(t, err)
	assert.True(t, changed)
	cart := repo.List(ctx)
	require.Len(t, cart, 1)
	assert.Equal(t, "2", cart[0].ProductID)

	changed, err = repo.Clear(ctx)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.Empty(t, repo.List(ctx))

	changed, err = repo.Clear(ctx)
	require.NoError(t, err)
	assert.False(t, changed)
}

func TestCartRemoveOrderedKeepsLaterItems(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	repo := NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys))

	_, err := repo.AddItem(ctx, "1", 2)
	require.NoError(t, err)
	ordered := repo.List(ctx)

	// Added after the order snapshot.
	_, err = repo.AddItem(ctx, "1", 1)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, "2", 1)
	require.NoError(t, err)

	require.NoError(t, repo.RemoveOrdered(ctx, ordered))

	cart := repo.List(ctx)
	require.Len(t, cart, 2)
	assert.Equal(t, "1", cart[0].ProductID)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, "2", cart[1].ProductID)
	assert.Equal(t, 1, cart[1].Quantity)
}

func TestCartRemoveOrderedConflict(t *testing.T) {
	ctx, kv, keys := newCartFixture(t)
	repo := NewKVCartRepository(kv, keys, NewKVProductRepository(kv, keys))

	_, err := repo.AddItem(ctx, "1", 2)
	require.NoError(t, err)
	_, err = repo.AddItem(ctx, "2", 1)
	require.NoError(t, err)
	ordered := repo.List(ctx)

	_, err = repo.SetQuantity(ctx, "1", 1)
	require.NoError(t, err)

	err = repo.RemoveOrdered(ctx, ordered)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, "CONFLICT"))

	cart := repo.List(ctx)
	require.Len(t, cart, 2)
	assert.Equal(t, 1, cart[0].Quantity)
	assert.Equal(t, 1, cart[1].Quantity)
}

func sampleChat(id string) entity.ChatThread {
	return entity.ChatThread{
		ChatID:          id,
		Participants:    []string{entity.CurrentUserID, "seller_0"},
		SellerName:      "Ming",
		SellerAvatar:    "https://example.com/a.png",
		Messages:        []entity.Message{},
		LastMessageTime: fixedTime,
	}
}

func TestChatAddAndFind(t *testing.T) {
	ctx := context.Background()
	repo := NewKVChatRepository(kvstore.NewMemoryStore(), NewKeys(""))

	require.NoError(t, repo.Add(ctx, sampleChat("chat_1")))
	duplicate := sampleChat("chat_1")
	duplicate.SellerName = "Someone else"
	require.NoError(t, repo.Add(ctx, duplicate))

	chats := repo.List(ctx)
	require.Len(t, chats, 1)
	assert.Equal(t, "Ming", chats[0].SellerName)

	found, ok := repo.FindByID(ctx, "chat_1")
	require.True(t, ok)
	assert.Equal(t, sampleChat("chat_1"), *found)

	_, ok = repo.FindByID(ctx, "chat_2")
	assert.False(t, ok)
}

func TestCartAndChatRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := kvstore.NewMemoryStore()
	keys := NewKeys("demo:")
	productRepo := NewKVProductRepository(kv, keys)
	cartRepo := NewKVCartRepository(kv, keys, productRepo)
	chatRepo := NewKVChatRepository(kv, keys)

	cart := []entity.CartEntry{
		{ProductID: "1", Quantity: 2, Product: sampleProduct("1", 100)},
		{ProductID: "2", Quantity: 1, Product: sampleProduct("2", 50)},
	}
	require.NoError(t, cartRepo.Save(ctx, cart))
	assert.Equal(t, cart, cartRepo.List(ctx))

	chat := sampleChat("chat_1")
	chat.Messages = []entity.Message{
		{ID: "msg_1", Sender: entity.CurrentUserID, Text: "Hi", Timestamp: fixedTime},
		{ID: "msg_2", Sender: "seller_0", Text: "Hello", Timestamp: fixedTime.Add(time.Minute)},
	}
	chat.UnreadCount = 1
	chat.LastMessage = "Hello"
	chat.LastMessageTime = fixedTime.Add(time.Minute)
	chats := []entity.ChatThread{chat, sampleChat("chat_2")}
	require.NoError(t, chatRepo.Save(ctx, chats))
	assert.Equal(t, chats, chatRepo.List(ctx))

	_, found, err := kv.Get(ctx, "demo:cart")
	require.NoError(t, err)
	assert.True(t, found)
}

func TestChatAppendMessage(t *testing.T) {
	ctx := context.Background()
	repo := NewKVChatRepository(kvstore.NewMemoryStore(), NewKeys(""))
	require.NoError(t, repo.Add(ctx, sampleChat("chat_1")))

	at := fixedTime.Add(time.Minute)
	appended, err := repo.AppendMessage(ctx, "chat_1", entity.Message{
		ID:        "msg_1",
		Sender:    entity.CurrentUserID,
		Text:      "Is this still available?",
		Timestamp: at,
	}, false)
	require.NoError(t, err)
	assert.True(t, appended)

	chat, _ := repo.FindByID(ctx, "chat_1")
	require.Len(t, chat.Messages, 1)
	assert.Equal(t, "Is this still available?", chat.LastMessage)
	assert.Equal(t, at, chat.LastMessageTime)
	assert.Equal(t, 0, chat.UnreadCount)

	appended, err = repo.AppendMessage(ctx, "chat_missing", entity.Message{ID: "msg_2", Text: "hi"}, true)
	require.NoError(t, err)
	assert.False(t, appended)
	assert.Len(t, repo.List(ctx), 1)
}

func TestChatAppendInboundRaisesUnreadInOneWrite(t *testing.T) {
	ctx := context.Background()
	kv := &countingStore{Store: kvstore.NewMemoryStore()}
	repo := NewKVChatRepository(kv, NewKeys(""))
	require.NoError(t, repo.Add(ctx, sampleChat("chat_1")))
	writes := kv.sets

	appended, err := repo.AppendMessage(ctx, "chat_1", entity.Message{ID: "msg_1", Sender: "seller_0", Text: "Yes!"}, true)
	require.NoError(t, err)
	assert.True(t, appended)
	assert.Equal(t, writes+1, kv.sets)

	chat, _ := repo.FindByID(ctx, "chat_1")
	assert.Equal(t, 1, chat.UnreadCount)
	assert.Equal(t, "Yes!", chat.LastMessage)
}

func TestChatAppendWriteFailureLeavesThreadUnchanged(t *testing.T) {
	ctx := context.Background()
	mem := kvstore.NewMemoryStore()
	repo := NewKVChatRepository(mem, NewKeys(""))
	require.NoError(t, repo.Add(ctx, sampleChat("chat_1")))

	failing := NewKVChatRepository(&failingWriteStore{Store: mem}, NewKeys(""))
	appended, err := failing.AppendMessage(ctx, "chat_1", entity.Message{ID: "msg_1", Sender: "seller_0", Text: "Yes!"}, true)
	require.Error(t, err)
	assert.False(t, appended)

	chat, _ := repo.FindByID(ctx, "chat_1")
	assert.Empty(t, chat.Messages)
	assert.Equal(t, 0, chat.UnreadCount)
}

func TestChatMarkRead(t *testing.T) {
	ctx := context.Background()
	repo := NewKVChatRepository(kvstore.NewMemoryStore(), NewKeys(""))
	chat := sampleChat("chat_1")
	chat.UnreadCount = 2
	require.NoError(t, repo.Add(ctx, chat))

	changed, err := repo.MarkRead(ctx, "chat_1")
	require.NoError(t, err)
	assert.True(t, changed)
	found, _ := repo.FindByID(ctx, "chat_1")
	assert.Equal(t, 0, found.UnreadCount)

	changed, err = repo.MarkRead(ctx, "chat_1")
	require.NoError(t, err)
	assert.False(t, changed)

	changed, err = repo.MarkRead(ctx, "chat_missing")
	require.NoError(t, err)
	assert.False(t, changed)
}
