//go:build wireinject
// +build wireinject

package main

import (
	"FreshMall/config"
	"FreshMall/dao"
	"FreshMall/dao/cache"
	"FreshMall/handler"
	"FreshMall/pkg/client"
	"FreshMall/pkg/database"
	"FreshMall/pkg/gateway"
	"FreshMall/pkg/rocketmq"
	"FreshMall/pkg/server"
	"FreshMall/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		config.ProvideWechatPayConfig,
		rocketmq.InitProducer,
		gateway.NewWechatGateway,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Order), "*"),
		wire.Struct(new(handler.Goods), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
