package repository

import (
	"context"

	"fleamarket/internal/domain/entity"
)

type ChatRepository interface {
	List(ctx context.Context) []entity.ChatThread
	Save(ctx context.Context, chats []entity.ChatThread) error
	FindByID(ctx context.Context, chatID string) (*entity.ChatThread, bool)

	// Add is a no-op when a thread with the same chatId exists.
	Add(ctx context.Context, chat entity.ChatThread) error
	// AppendMessage reports false when the chat does not exist. With bumpUnread
	// the unread count is raised in the same write.
	AppendMessage(ctx context.Context, chatID string, message entity.Message, bumpUnread bool) (bool, error)
	// MarkRead reports false when the chat is missing or already read.
	MarkRead(ctx context.Context, chatID string) (bool, error)
}
