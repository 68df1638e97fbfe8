package usecase

import (
	"fmt"
	"net/url"
	"time"

	"fleamarket/internal/domain/entity"
)

var sampleSellers = []struct {
	name   string
	rating float64
}{
	{"Ming", 4.8},
	{"Hua", 4.9},
	{"Mei", 4.7},
	{"Nobita", 4.6},
	{"Shizuka", 4.9},
}

// GenerateSeller returns the sample seller for index, cycling through a fixed table.
func GenerateSeller(index int) entity.Seller {
	s := sampleSellers[index%len(sampleSellers)]
	return entity.Seller{
		ID:     fmt.Sprintf("seller_%d", index),
		Name:   s.name,
		Avatar: "https://ui-avatars.com/api/?name=" + url.QueryEscape(s.name) + "&background=random",
		Rating: s.rating,
	}
}

// SampleCatalog is the fixed listing set written into an empty store.
func SampleCatalog(now time.Time) []entity.Product {
	image := func(seed string) []string {
		return []string{"https://picsum.photos/seed/" + seed + "/800/800"}
	}

	return []entity.Product{
		{
			ID:          "1",
			Title:       "iPhone 15 Pro Max 256GB",
			Description: "Brand new and sealed, local warranty for one year. Blue titanium. Cable, manual and stickers included.",
			Price:       42900,
			Condition:   entity.ConditionNew,
			Category:    entity.CategoryElectronics,
			Images:      image("iphone15"),
			Seller:      GenerateSeller(0),
			CreatedAt:   now,
		},
		{
			ID:          "2",
			Title:       "MacBook Air M2 13-inch",
			Description: "Bought in 2023, light signs of use. 8GB RAM and 256GB SSD. Original charger included.",
			Price:       32000,
			Condition:   entity.ConditionNearNew,
			Category:    entity.CategoryElectronics,
			Images:      image("macbook"),
			Seller:      GenerateSeller(1),
			CreatedAt:   now,
		},
		{
			ID:          "3",
			Title:       "Sony WH-1000XM5 noise cancelling headphones",
			Description: "Used for six months, fully working, slight wear on the ear pads. Case and cable included.",
			Price:       8500,
			Condition:   entity.ConditionGood,
			Category:    entity.CategoryElectronics,
			Images:      image("sony"),
			Seller:      GenerateSeller(2),
			CreatedAt:   now,
		},
		{
			ID:          "4",
			Title:       "Nintendo Switch OLED console",
			Description: "Sealed, local retail unit. White edition with warranty card.",
			Price:       10500,
			Condition:   entity.ConditionNew,
			Category:    entity.CategoryGames,
			Images:      image("switch"),
			Seller:      GenerateSeller(3),
			CreatedAt:   now,
		},
		{
			ID:          "5",
			Title:       "Adidas Ultra Boost running shoes",
			Description: "US 9.5, worn three times, practically new. Original box kept.",
			Price:       3200,
			Condition:   entity.ConditionNearNew,
			Category:    entity.CategorySports,
			Images:      image("adidas"),
			Seller:      GenerateSeller(4),
			CreatedAt:   now,
		},
		{
			ID:          "6",
			Title:       "Canon EOS R6 camera body",
			Description: "Bought in 2022, around 5000 shutter actuations. Works perfectly. Two batteries and charger included.",
			Price:       55000,
			Condition:   entity.ConditionGood,
			Category:    entity.CategoryElectronics,
			Images:      image("canon"),
			Seller:      GenerateSeller(0),
			CreatedAt:   now,
		},
	}
}
