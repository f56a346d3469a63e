package server

import (
	"Bazaar/handler"
)

type Handlers struct {
	Auth        *handler.Auth
	Catalog     *handler.Catalog
	Cart        *handler.Cart
	Product     *handler.Product
	Application *handler.Application
	Order       *handler.Order
}
