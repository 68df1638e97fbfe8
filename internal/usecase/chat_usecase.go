package usecase

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"fleamarket/internal/domain/entity"
	"fleamarket/pkg/logger"
)

func (uc *StoreUseCase) GetChatByID(ctx context.Context, chatID string) (*entity.ChatThread, bool) {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.chatRepo.FindByID(ctx, chatID)
}

// CreateOrGetChat returns the thread between the session user and sellerID,
// creating it on first use. Lookup and insert happen in one critical section
// keyed by the unordered participant pair, so repeated or overlapping calls
// never produce a second thread.
func (uc *StoreUseCase) CreateOrGetChat(ctx context.Context, sellerID, sellerName, sellerAvatar string) (string, error) {
	if sellerID == "" || sellerID == uc.user.ID {
		logger.Debug("CreateOrGetChat: refusing chat with %q", sellerID)
		return "", nil
	}

	var chatID string
	err := uc.mutate(ctx, entity.CollectionChats, func() (bool, error) {
		// Storage may have been rewritten by another writer since the last refresh.
		uc.refreshLocked(ctx, entity.CollectionChats)

		key := entity.PairKey(uc.user.ID, sellerID)
		if id, ok := uc.chatByPair[key]; ok {
			chatID = id
			return false, nil
		}

		chat := entity.ChatThread{
			ChatID:          "chat_" + uuid.NewString(),
			Participants:    []string{uc.user.ID, sellerID},
			SellerName:      sellerName,
			SellerAvatar:    sellerAvatar,
			Messages:        []entity.Message{},
			UnreadCount:     0,
			LastMessage:     "",
			LastMessageTime: uc.now(),
		}
		if err := uc.chatRepo.Add(ctx, chat); err != nil {
			return true, err
		}

		chatID = chat.ChatID
		uc.chatByPair[key] = chatID
		logger.Info("Created chat %s with seller %s", chatID, sellerID)
		return true, nil
	})
	if err != nil {
		return "", err
	}
	return chatID, nil
}

// SendMessage appends a message from the session user. Blank text and unknown
// chats are silently ignored.
func (uc *StoreUseCase) SendMessage(ctx context.Context, chatID, text string) error {
	return uc.appendMessage(ctx, chatID, uc.user.ID, text, false)
}

// ReceiveMessage appends a message from the other participant and bumps the
// thread's unread count. It is the only path that raises unreadCount besides
// seeded data.
func (uc *StoreUseCase) ReceiveMessage(ctx context.Context, chatID, text string) error {
	uc.mu.RLock()
	chat, ok := uc.chatRepo.FindByID(ctx, chatID)
	uc.mu.RUnlock()
	if !ok {
		return nil
	}

	sender := ""
	for _, p := range chat.Participants {
		if p != uc.user.ID {
			sender = p
			break
		}
	}
	if sender == "" {
		return nil
	}
	return uc.appendMessage(ctx, chatID, sender, text, true)
}

func (uc *StoreUseCase) appendMessage(ctx context.Context, chatID, sender, text string, inbound bool) error {
	text = strings.TrimSpace(text)
	if text == "" {
		return nil
	}

	return uc.mutate(ctx, entity.CollectionChats, func() (bool, error) {
		message := entity.Message{
			ID:        "msg_" + uuid.NewString(),
			Sender:    sender,
			Text:      text,
			Timestamp: uc.now(),
		}

		return uc.chatRepo.AppendMessage(ctx, chatID, message, inbound)
	})
}

func (uc *StoreUseCase) MarkChatAsRead(ctx context.Context, chatID string) error {
	return uc.mutate(ctx, entity.CollectionChats, func() (bool, error) {
		return uc.chatRepo.MarkRead(ctx, chatID)
	})
}

func (uc *StoreUseCase) GetUnreadCount() int {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return unreadCount(uc.chats)
}

// ListChats returns the mirrored threads, most recent activity first.
func (uc *StoreUseCase) ListChats() []entity.ChatThread {
	uc.mu.RLock()
	chats := make([]entity.ChatThread, len(uc.chats))
	for i, c := range uc.chats {
		chats[i] = c.Clone()
	}
	uc.mu.RUnlock()

	sort.SliceStable(chats, func(i, j int) bool {
		return chats[i].LastMessageTime.After(chats[j].LastMessageTime)
	})
	return chats
}

func unreadCount(chats []entity.ChatThread) int {
	total := 0
	for _, c := range chats {
		total += c.UnreadCount
	}
	return total
}
