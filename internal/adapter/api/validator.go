package api

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"fleamarket/internal/domain/entity"
)

var mobilePhonePattern = regexp.MustCompile(`^09\d{8}$`)

// Validator adapts go-playground/validator to echo.Validator.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return mobilePhonePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	v.RegisterValidation("category", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		for _, c := range entity.Categories {
			if string(c) == value {
				return true
			}
		}
		return false
	})
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return &Validator{validate: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
