package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/domain/repository"
	"fleamarket/pkg/logger"
)

type kvChatRepository struct {
	kv  repository.KeyValueStore
	key string
}

func NewKVChatRepository(kv repository.KeyValueStore, keys Keys) repository.ChatRepository {
	return &kvChatRepository{
		kv:  kv,
		key: keys.Chats,
	}
}

func (r *kvChatRepository) List(ctx context.Context) []entity.ChatThread {
	return loadCollection[entity.ChatThread](ctx, r.kv, r.key)
}

func (r *kvChatRepository) Save(ctx context.Context, chats []entity.ChatThread) error {
	return saveCollection(ctx, r.kv, r.key, chats)
}

func (r *kvChatRepository) FindByID(ctx context.Context, chatID string) (*entity.ChatThread, bool) {
	chats := r.List(ctx)
	idx := indexOfChat(chats, chatID)
	if idx < 0 {
		return nil, false
	}
	return &chats[idx], true
}

func (r *kvChatRepository) Add(ctx context.Context, chat entity.ChatThread) error {
	chats := r.List(ctx)
	if indexOfChat(chats, chat.ChatID) >= 0 {
		return nil
	}
	if chat.Messages == nil {
		chat.Messages = []entity.Message{}
	}
	return r.Save(ctx, append(chats, chat))
}

func (r *kvChatRepository) AppendMessage(ctx context.Context, chatID string, message entity.Message, bumpUnread bool) (bool, error) {
	chats := r.List(ctx)
	idx := indexOfChat(chats, chatID)
	if idx < 0 {
		logger.Debug("AppendMessage: chat %s not found, dropping message", chatID)
		return false, nil
	}

	chats[idx].Messages = append(chats[idx].Messages, message)
	chats[idx].LastMessage = message.Text
	chats[idx].LastMessageTime = message.Timestamp
	if bumpUnread {
		chats[idx].UnreadCount++
	}

	if err := r.Save(ctx, chats); err != nil {
		return false, err
	}
	return true, nil
}

func (r *kvChatRepository) MarkRead(ctx context.Context, chatID string) (bool, error) {
	chats := r.List(ctx)
	idx := indexOfChat(chats, chatID)
	if idx < 0 || chats[idx].UnreadCount == 0 {
		return false, nil
	}

	chats[idx].UnreadCount = 0
	if err := r.Save(ctx, chats); err != nil {
		return false, err
	}
	return true, nil
}

func indexOfChat(chats []entity.ChatThread, chatID string) int {
	return findIndex(chats, func(c entity.ChatThread) bool { return c.ChatID == chatID })
}
