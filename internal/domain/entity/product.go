package entity

import (
	"time"
)

type Condition string

const (
	ConditionNew     Condition = "new"
	ConditionNearNew Condition = "near-new"
	ConditionGood    Condition = "good"
	ConditionFair    Condition = "fair"
)

type Category string

const (
	CategoryElectronics Category = "electronics"
	CategoryGames       Category = "games"
	CategorySports      Category = "sports"
	CategoryApparel     Category = "apparel"
	CategoryBooks       Category = "books"
	CategoryOther       Category = "other"
)

// Categories lists the fixed category set in display order.
var Categories = []Category{
	CategoryElectronics,
	CategoryGames,
	CategorySports,
	CategoryApparel,
	CategoryBooks,
	CategoryOther,
}

// Seller is the seller snapshot embedded in a product.
type Seller struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Avatar string  `json:"avatar"`
	Rating float64 `json:"rating"`
}

type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Condition   Condition `json:"condition"`
	Category    Category  `json:"category"`
	Images      []string  `json:"images"`
	Seller      Seller    `json:"seller"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Clone returns a deep copy so snapshots never share the images slice.
func (p Product) Clone() Product {
	cp := p
	if p.Images != nil {
		cp.Images = make([]string, len(p.Images))
		copy(cp.Images, p.Images)
	}
	return cp
}
