package mq

import (
	"context"

	"Bazaar/config"
	"Bazaar/pkg/log"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

const (
	TopicOrderCreated   = "bazaar-order-created"
	TopicVendorApproved = "bazaar-vendor-approved"
)

func init() {
	rlog.SetLogLevel("error")
}

// Producer 领域事件投递。未配置 nameserver 时降级为空操作，不影响主流程。
type Producer struct {
	inner rocketmq.Producer
}

func NewProducer(cfg *config.RocketMQConfig) *Producer {
	if cfg == nil || len(cfg.NameServer) == 0 {
		log.L.Info("rocketmq not configured, domain events disabled")
		return &Producer{}
	}

	retry := cfg.Producer.Retry
	if retry <= 0 {
		retry = 2
	}
	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(retry),
	)
	if err != nil {
		log.L.Fatal("create rocketmq producer", zap.Error(err))
	}
	if err := p.Start(); err != nil {
		log.L.Fatal("start rocketmq producer", zap.Error(err))
	}
	log.L.Info("init producer success")

	return &Producer{inner: p}
}

func (p *Producer) Publish(ctx context.Context, topic string, body []byte) error {
	if p.inner == nil {
		return nil
	}
	_, err := p.inner.SendSync(ctx, primitive.NewMessage(topic, body))
	return err
}

func (p *Producer) Shutdown() {
	if p.inner != nil {
		_ = p.inner.Shutdown()
	}
}
