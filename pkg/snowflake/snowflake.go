package snowflake

import "github.com/bwmarrin/snowflake"

var node *snowflake.Node

func init() {
	node, _ = snowflake.NewNode(1)
}

// GenID 生成支付流水等内部记录的全局唯一ID
func GenID() int64 {
	return node.Generate().Int64()
}
