package config

// WechatPayConfig 微信支付商户参数
type WechatPayConfig struct {
	AppID                      string `yaml:"app_id"`                        // 应用ID
	MchID                      string `yaml:"mch_id"`                        // 商户号
	MchCertificateSerialNumber string `yaml:"mch_certificate_serial_number"` // 商户证书序列号
	MchAPIv3Key                string `yaml:"mch_apiv3_key"`                 // APIv3密钥
	MchPrivateKeyPath          string `yaml:"mch_private_key_path"`          // 商户私钥文件路径
	NotifyURL                  string `yaml:"notify_url"`                    // 支付回调URL
	PollInterval               int    `yaml:"poll_interval"`                 // 支付结果轮询间隔（秒）
	PollAttempts               int    `yaml:"poll_attempts"`                 // 支付结果轮询次数上限
}

func ProvideWechatPayConfig(cfg *Config) *WechatPayConfig {
	return cfg.WechatPayConfig
}
