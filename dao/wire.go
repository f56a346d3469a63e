package dao

import (
	"github.com/google/wire"
)

var ProviderSet = wire.NewSet(
	NewProfile,
	NewCategory,
	NewProduct,
	NewCart,
	NewOrder,
	NewVendorApplication,
)
