package entity

// CurrentUserID identifies the local session user in participants and message senders.
const CurrentUserID = "current_user"

type User struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// CurrentUser returns the fixed identity of the local session.
func CurrentUser() User {
	return User{
		ID:     CurrentUserID,
		Name:   "Me",
		Avatar: "https://ui-avatars.com/api/?name=ME&background=FF6B35&color=fff",
	}
}

// AsSeller is the seller snapshot used when the session user lists a product.
func (u User) AsSeller() Seller {
	return Seller{
		ID:     u.ID,
		Name:   u.Name,
		Avatar: u.Avatar,
		Rating: 5.0,
	}
}
