package rocketmq

import (
	"context"

	"FreshMall/config"
	"FreshMall/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

// 异步任务主题
// 核心下单/购物车流程只负责投递消息，绝不等待任务执行
const (
	TopicStaticIndex    = "freshmall_static_index"    // 首页静态数据重建
	TopicCatalogChanged = "freshmall_catalog_changed" // 商品目录变更（缓存失效事件）
)

// Queue 出站任务队列
type Queue interface {
	SendMsg(ctx context.Context, topic string, body []byte) error
}

type Rocketmq struct {
	RocketmqProducer rocketmq.Producer
}

var _ Queue = (*Rocketmq)(nil)

func init() {
	rlog.SetLogLevel("error")
}

func InitProducer(cfg *config.RocketMQConfig) *Rocketmq {
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Fatal("new rocketmq producer", zap.Error(err))
	}
	if err = p.Start(); err != nil {
		log.L.Fatal("start rocketmq producer", zap.Error(err))
	}
	log.L.Info("init producer success")

	return &Rocketmq{RocketmqProducer: p}
}

func InitConsumer(cfg *config.RocketMQConfig) rocketmq.PushConsumer {
	c, err := rocketmq.NewPushConsumer(
		consumer.WithNameServer(cfg.NameServer),
		consumer.WithGroupName(cfg.Consumer.Group),
	)
	if err != nil {
		log.L.Fatal("new rocketmq consumer", zap.Error(err))
	}

	return c
}

func (p *Rocketmq) SendMsg(ctx context.Context, topic string, body []byte) error {
	msg := &primitive.Message{
		Topic: topic,
		Body:  body,
	}

	// 发送同步消息
	res, err := p.RocketmqProducer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Info("send message success", zap.String("topic", topic), zap.Any("msg", res.MsgID))
	return nil
}
