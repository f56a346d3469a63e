//go:build wireinject
// +build wireinject

package main

import (
	"Bazaar/config"
	"Bazaar/dao"
	"Bazaar/dao/cache"
	"Bazaar/handler"
	"Bazaar/pkg/client"
	"Bazaar/pkg/database"
	"Bazaar/pkg/mq"
	"Bazaar/pkg/oss"
	"Bazaar/pkg/server"
	"Bazaar/service"

	"github.com/google/wire"
)

func InitServer(cfg *config.Config) *server.AppProvider {
	wire.Build(

		client.NewRedisClient,
		config.ProvideOssConfig,
		config.ProvideRocketMQConfig,
		oss.GetOssClient,
		mq.NewProducer,
		server.NewGinEngine,
		cache.ProviderSet,

		wire.Struct(new(handler.Auth), "*"),
		wire.Struct(new(handler.Catalog), "*"),
		wire.Struct(new(handler.Cart), "*"),
		wire.Struct(new(handler.Product), "*"),
		wire.Struct(new(handler.Application), "*"),
		wire.Struct(new(handler.Order), "*"),

		wire.Struct(new(server.AppProvider), "*"),
		wire.Struct(new(server.Handlers), "*"),

		dao.ProviderSet,

		service.ProviderSet,
		database.NewDB,
	)
	return nil
}
