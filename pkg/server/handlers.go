package server

import (
	"FreshMall/handler"
)

type Handlers struct {
	Cart  *handler.Cart
	Order *handler.Order
	Goods *handler.Goods
}
