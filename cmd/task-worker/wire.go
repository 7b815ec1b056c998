//go:build wireinject
// +build wireinject

package main

import (
	"FreshMall/config"
	"FreshMall/dao"
	"FreshMall/dao/cache"
	"FreshMall/pkg/client"
	"FreshMall/pkg/database"
	"FreshMall/pkg/gateway"
	"FreshMall/pkg/rocketmq"
	"FreshMall/service"
	"FreshMall/worker"

	"github.com/google/wire"
)

func InitWorker(cfg *config.Config) *worker.Tasks {
	wire.Build(

		client.NewRedisClient,
		config.ProvideRocketMQConfig,
		config.ProvideWechatPayConfig,
		rocketmq.InitProducer,
		rocketmq.InitConsumer,
		gateway.NewWechatGateway,
		cache.ProviderSet,

		wire.Struct(new(worker.Tasks), "*"),

		dao.ProviderSet,
		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
