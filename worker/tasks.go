package worker

import (
	"context"

	"FreshMall/pkg/log"
	mq "FreshMall/pkg/rocketmq"
	"FreshMall/service"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/consumer"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"go.uber.org/zap"
)

// Tasks 后台任务消费者
// 下单、上架等在线流程只投递消息，耗时工作都在这里完成
type Tasks struct {
	GoodsService service.IGoodsService
	Consumer     rocketmq.PushConsumer
}

func (t *Tasks) Start() error {
	err := t.Consumer.Subscribe(mq.TopicStaticIndex, consumer.MessageSelector{},
		func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
			for _, msg := range msgs {
				if err := t.GoodsService.RebuildIndexCache(ctx); err != nil {
					log.L.Error("rebuild index cache",
						zap.String("msg_id", msg.MsgId),
						zap.Error(err))
					return consumer.ConsumeRetryLater, nil
				}
				log.L.Info("index cache rebuilt", zap.String("msg_id", msg.MsgId))
			}
			return consumer.ConsumeSuccess, nil
		})
	if err != nil {
		return err
	}

	err = t.Consumer.Subscribe(mq.TopicCatalogChanged, consumer.MessageSelector{},
		func(ctx context.Context, msgs ...*primitive.MessageExt) (consumer.ConsumeResult, error) {
			for _, msg := range msgs {
				if err := t.GoodsService.InvalidateIndexCache(ctx); err != nil {
					log.L.Error("invalidate index cache",
						zap.String("msg_id", msg.MsgId),
						zap.Error(err))
					return consumer.ConsumeRetryLater, nil
				}
				log.L.Info("index cache invalidated",
					zap.String("msg_id", msg.MsgId),
					zap.String("body", string(msg.Body)))
			}
			return consumer.ConsumeSuccess, nil
		})
	if err != nil {
		return err
	}

	return t.Consumer.Start()
}

func (t *Tasks) Stop() {
	if err := t.Consumer.Shutdown(); err != nil {
		log.L.Warn("shutdown consumer", zap.Error(err))
	}
}
