package service

import (
	"Bazaar/dao"
	"Bazaar/dao/cache"
	"Bazaar/pkg/mq"

	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	wire.Struct(new(IdentityService), "*"),
	wire.Bind(new(IIdentityService), new(*IdentityService)),

	wire.Struct(new(CatalogService), "*"),
	wire.Bind(new(ICatalogService), new(*CatalogService)),

	NewCartService,
	wire.Bind(new(ICartService), new(*CartService)),

	wire.Struct(new(ProductService), "*"),
	wire.Bind(new(IProductService), new(*ProductService)),

	wire.Struct(new(ApplicationService), "*"),
	wire.Bind(new(IApplicationService), new(*ApplicationService)),

	wire.Struct(new(OrderService), "*"),
	wire.Bind(new(IOrderService), new(*OrderService)),

	wire.Struct(new(UploadService), "*"),
	wire.Bind(new(IUploadService), new(*UploadService)),

	// 持久化边界只有一套落地实现
	wire.Bind(new(ProfileStore), new(*dao.Profile)),
	wire.Bind(new(CatalogStore), new(*dao.Product)),
	wire.Bind(new(CategoryStore), new(*dao.Category)),
	wire.Bind(new(CategoryTreeCache), new(*cache.CategoryCache)),
	wire.Bind(new(CartStore), new(*dao.Cart)),
	wire.Bind(new(ProductStore), new(*dao.Product)),
	wire.Bind(new(ApplicationStore), new(*dao.VendorApplication)),
	wire.Bind(new(OrderStore), new(*dao.Order)),
	wire.Bind(new(EventPublisher), new(*mq.Producer)),
)
