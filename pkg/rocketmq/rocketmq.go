package rocketmq

import (
	"FollowCoins/config"
	"FollowCoins/pkg/log"
	"context"
	"encoding/json"

	"github.com/apache/rocketmq-client-go/v2"
	"github.com/apache/rocketmq-client-go/v2/primitive"
	"github.com/apache/rocketmq-client-go/v2/producer"
	"github.com/apache/rocketmq-client-go/v2/rlog"
	"go.uber.org/zap"
)

const (
	TagOrderCreated   = "order.created"
	TagFollowSettled  = "follow.settled"
	TagOrderCompleted = "order.completed"
)

// Publisher 业务事件投递
type Publisher interface {
	Publish(ctx context.Context, tag string, key string, payload any) error
}

func init() {
	rlog.SetLogLevel("error")
}

type Producer struct {
	producer rocketmq.Producer
	topic    string
}

// NewPublisher 未配置 nameserver 或启动失败时返回空实现
func NewPublisher(cfg *config.RocketMQConfig) Publisher {
	if !cfg.Enabled() {
		log.L.Info("rocketmq disabled, events dropped")
		return Noop{}
	}

	p, err := rocketmq.NewProducer(
		producer.WithNameServer(cfg.NameServer),
		producer.WithGroupName(cfg.Producer.Group),
		producer.WithRetry(cfg.Producer.Retry),
	)
	if err != nil {
		log.L.Error("init producer failed", zap.Error(err))
		return Noop{}
	}
	if err = p.Start(); err != nil {
		log.L.Error("start producer failed", zap.Error(err))
		return Noop{}
	}
	log.L.Info("init producer success", zap.Strings("nameserver", cfg.NameServer))

	return &Producer{producer: p, topic: cfg.Topic}
}

func (p *Producer) Publish(ctx context.Context, tag string, key string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	msg := primitive.NewMessage(p.topic, body).WithTag(tag)
	if key != "" {
		msg = msg.WithKeys([]string{key})
	}

	// 发送同步消息
	res, err := p.producer.SendSync(ctx, msg)
	if err != nil {
		return err
	}
	log.L.Debug("send message success", zap.String("tag", tag), zap.String("msg_id", res.MsgID))
	return nil
}

func (p *Producer) Shutdown() error {
	return p.producer.Shutdown()
}

type Noop struct{}

func (Noop) Publish(context.Context, string, string, any) error {
	return nil
}
