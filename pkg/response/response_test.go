package response

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	apperrors "fleamarket/pkg/errors"
)

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	return e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec), rec
}

func TestErrorMapsAppError(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Error(c, apperrors.NotFound("Chat", nil)))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), "Chat not found")
}

func TestErrorMapsValidationErrors(t *testing.T) {
	c, rec := newContext()

	type form struct {
		Price float64 `validate:"gt=0"`
	}
	err := validator.New().Struct(form{Price: -1})

	assert.NoError(t, Error(c, err))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "price must be greater than 0")
}

func TestErrorHidesUnknownErrors(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Error(c, assert.AnError))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), assert.AnError.Error())
}

func TestPaginatedTotalPages(t *testing.T) {
	c, rec := newContext()

	assert.NoError(t, Paginated(c, []int{1, 2}, 7, 1, 3))
	assert.Contains(t, rec.Body.String(), `"totalPages":3`)
}
