package api

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"fleamarket/internal/domain/entity"
)

type contactForm struct {
	Name  string `validate:"required,notblank"`
	Phone string `validate:"required,phone"`
}

func TestValidatorCustomRules(t *testing.T) {
	v := NewValidator()

	assert.NoError(t, v.Validate(&contactForm{Name: "Ming", Phone: "0912345678"}))
	assert.Error(t, v.Validate(&contactForm{Name: "   ", Phone: "0912345678"}))

	for _, phone := range []string{"912345678", "09123456789", "0812345678", "09-1234-5678"} {
		assert.Error(t, v.Validate(&contactForm{Name: "Ming", Phone: phone}), phone)
	}
}

type listingForm struct {
	Category string `validate:"required,category"`
}

func TestValidatorCategoryRule(t *testing.T) {
	v := NewValidator()

	for _, c := range entity.Categories {
		assert.NoError(t, v.Validate(&listingForm{Category: string(c)}), c)
	}
	assert.Error(t, v.Validate(&listingForm{Category: "vehicles"}))
	assert.Error(t, v.Validate(&listingForm{Category: "Electronics"}))
}
