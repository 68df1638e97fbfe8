package entity

import "time"

const (
	CollectionProducts = "products"
	CollectionCart     = "cart"
	CollectionChats    = "chats"
)

// ChangeEvent is published after a collection was written, carrying the badge
// counts a view needs to re-render its header.
type ChangeEvent struct {
	Collection    string    `json:"collection"`
	CartItemCount int       `json:"cartItemCount"`
	CartTotal     float64   `json:"cartTotal"`
	UnreadCount   int       `json:"unreadCount"`
	At            time.Time `json:"at"`
}
