package ordersn

import (
	"github.com/bwmarrin/snowflake"
	"github.com/speps/go-hashids/v2"
)

var (
	node *snowflake.Node
	h    *hashids.HashID
)

func init() {
	node, _ = snowflake.NewNode(1)

	hd := hashids.NewData()
	hd.Salt = "bazaar-order-sn"
	hd.MinLength = 12
	hd.Alphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	h, _ = hashids.NewWithData(hd)
}

// Gen 生成对外展示的订单号：雪花 ID 经 hashids 编码，短且不暴露增量
func Gen() string {
	id := node.Generate().Int64()
	sn, err := h.EncodeInt64([]int64{id})
	if err != nil {
		return node.Generate().String()
	}
	return sn
}
