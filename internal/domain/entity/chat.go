package entity

import (
	"sort"
	"strings"
	"time"
)

type ChatThread struct {
	ChatID          string    `json:"chatId"`
	Participants    []string  `json:"participants"`
	SellerName      string    `json:"sellerName"`
	SellerAvatar    string    `json:"sellerAvatar"`
	Messages        []Message `json:"messages"`
	UnreadCount     int       `json:"unreadCount"`
	LastMessage     string    `json:"lastMessage"`
	LastMessageTime time.Time `json:"lastMessageTime"`
}

// HasParticipants reports whether every given user id takes part in the thread.
func (c ChatThread) HasParticipants(userIDs ...string) bool {
	for _, id := range userIDs {
		found := false
		for _, p := range c.Participants {
			if p == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// PairKey is the canonical key of the thread's participant pair.
func (c ChatThread) PairKey() string {
	return PairKey(c.Participants...)
}

func (c ChatThread) Clone() ChatThread {
	cp := c
	if c.Participants != nil {
		cp.Participants = append([]string(nil), c.Participants...)
	}
	if c.Messages != nil {
		cp.Messages = append([]Message(nil), c.Messages...)
	}
	return cp
}

// PairKey builds an order-independent key from user ids, so {a, b} and {b, a}
// map to the same thread.
func PairKey(userIDs ...string) string {
	ids := append([]string(nil), userIDs...)
	sort.Strings(ids)
	return strings.Join(ids, "|")
}
