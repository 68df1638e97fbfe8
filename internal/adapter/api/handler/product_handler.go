package handler

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"fleamarket/internal/domain/entity"
	"fleamarket/internal/usecase"
	"fleamarket/pkg/errors"
	"fleamarket/pkg/response"
	"fleamarket/pkg/utils"
)

type ProductHandler struct {
	storeUseCase *usecase.StoreUseCase
}

func NewProductHandler(storeUseCase *usecase.StoreUseCase) *ProductHandler {
	return &ProductHandler{
		storeUseCase: storeUseCase,
	}
}

type createProductRequest struct {
	Title       string   `json:"title" validate:"required,notblank,max=120"`
	Description string   `json:"description" validate:"required,notblank,max=2000"`
	Price       float64  `json:"price" validate:"required,gt=0"`
	Condition   string   `json:"condition" validate:"required,oneof=new near-new good fair"`
	Category    string   `json:"category" validate:"required,category"`
	Images      []string `json:"images" validate:"required,min=1,max=5,dive,required"`
}

// ListProducts serves the catalog, optionally filtered by ?search= and ?category=
func (h *ProductHandler) ListProducts(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	products := h.storeUseCase.SearchProducts(c.QueryParam("search"), c.QueryParam("category"))
	start, end := pagination.Window(len(products))

	return response.Paginated(c, products[start:end], int64(len(products)), pagination.Page, pagination.PageSize)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id := c.Param("id")

	product, ok := h.storeUseCase.GetProductByID(c.Request().Context(), id)
	if !ok {
		return response.Error(c, errors.NotFound("Product", nil))
	}

	return response.Success(c, product)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.BadRequest("Invalid request body", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	product := entity.Product{
		ID:          uuid.NewString(),
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Price:       req.Price,
		Condition:   entity.Condition(req.Condition),
		Category:    entity.Category(req.Category),
		Images:      req.Images,
		Seller:      h.storeUseCase.CurrentUser().AsSeller(),
		CreatedAt:   time.Now().UTC(),
	}

	if err := h.storeUseCase.AddProduct(c.Request().Context(), product); err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, product)
}
