package handler

import (
	"fleamarket/internal/usecase"
)

var (
	productHandler  *ProductHandler
	cartHandler     *CartHandler
	checkoutHandler *CheckoutHandler
	chatHandler     *ChatHandler
	sessionHandler  *SessionHandler
)

func Setup(storeUseCase *usecase.StoreUseCase) {
	productHandler = NewProductHandler(storeUseCase)
	cartHandler = NewCartHandler(storeUseCase)
	checkoutHandler = NewCheckoutHandler(storeUseCase)
	chatHandler = NewChatHandler(storeUseCase)
	sessionHandler = NewSessionHandler(storeUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetCartHandler() *CartHandler {
	return cartHandler
}

func GetCheckoutHandler() *CheckoutHandler {
	return checkoutHandler
}

func GetChatHandler() *ChatHandler {
	return chatHandler
}

func GetSessionHandler() *SessionHandler {
	return sessionHandler
}
