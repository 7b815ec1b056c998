package service

import (
	"FreshMall/dao"
	"FreshMall/dao/cache"
	"FreshMall/pkg/gateway"
	"FreshMall/pkg/rocketmq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(CartService), "*"),
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(GoodsService), "*"),
	wire.Bind(new(IGoodsService), new(*GoodsService)),

	NewPaymentService,
	wire.Bind(new(IPaymentService), new(*PaymentService)),

	wire.Bind(new(CartStore), new(*cache.CartStorage)),
	wire.Bind(new(SKUReader), new(*dao.Goods)),
	wire.Bind(new(gateway.Gateway), new(*gateway.WechatGateway)),
	wire.Bind(new(rocketmq.Queue), new(*rocketmq.Rocketmq)),
)
