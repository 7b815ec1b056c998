package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config 配置信息
type Config struct {
	App             *App             `json:"app" yaml:"app"`
	Redis           *Redis           `json:"redis" yaml:"redis"`
	MySQL           *MySQL           `json:"mysql" yaml:"mysql"`
	Jwt             *Jwt             `json:"jwt" yaml:"jwt"`
	Server          *Server          `json:"server" yaml:"server"`
	RocketMQ        *RocketMQConfig  `json:"rocketmq" yaml:"rocketmq"`
	WechatPayConfig *WechatPayConfig `json:"wechat_pay" yaml:"wechat_pay"`
	Order           *Order           `json:"order" yaml:"order"`
}

type Server struct {
	Http int `json:"http" yaml:"http"`
}

// Order 订单链路参数
type Order struct {
	TransitPrice uint64 `json:"transit_price" yaml:"transit_price"` // 运费（分），目前为固定值
}

func New(filename string) *Config {

	content, err := os.ReadFile(filename)
	if err != nil {
		panic(err)
	}

	var conf Config
	if yaml.Unmarshal(content, &conf) != nil {
		panic(fmt.Sprintf("解析 config.yaml 读取错误: %v", err))
	}

	return &conf
}

// Debug 调试模式
func (c *Config) Debug() bool {
	return c.App.Debug
}
