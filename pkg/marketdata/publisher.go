package marketdata

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// Publisher fans depth snapshots and trade prints out to in-process
// subscribers and, when a redis client is configured, to a pub/sub
// channel for out-of-process consumers.
type Publisher struct {
	log      *zap.Logger
	depthHub *Hub[Depth]
	tradeHub *Hub[TradePrint]

	redis   *redis.Client
	channel string
}

func NewPublisher(log *zap.Logger) *Publisher {
	return &Publisher{
		log:      log,
		depthHub: NewHub[Depth](),
		tradeHub: NewHub[TradePrint](),
	}
}

// WithRedis routes every published message to channel as JSON.
func (p *Publisher) WithRedis(client *redis.Client, channel string) *Publisher {
	p.redis = client
	p.channel = channel
	return p
}

func (p *Publisher) SubscribeDepth(buffer int) *Subscription[Depth] {
	return p.depthHub.Subscribe(buffer)
}

func (p *Publisher) UnsubscribeDepth(sub *Subscription[Depth]) {
	p.depthHub.Unsubscribe(sub)
}

func (p *Publisher) SubscribeTrades(buffer int) *Subscription[TradePrint] {
	return p.tradeHub.Subscribe(buffer)
}

func (p *Publisher) UnsubscribeTrades(sub *Subscription[TradePrint]) {
	p.tradeHub.Unsubscribe(sub)
}

func (p *Publisher) PublishDepth(ctx context.Context, depth Depth) {
	p.depthHub.Broadcast(depth)
	p.publishRedis(ctx, depth)
}

func (p *Publisher) PublishTrade(ctx context.Context, print TradePrint) {
	p.tradeHub.Broadcast(print)
	p.publishRedis(ctx, print)
}

func (p *Publisher) publishRedis(ctx context.Context, payload any) {
	if p.redis == nil {
		return
	}
	data, err := json.Marshal(payload)
	if err != nil {
		p.log.Error("marshal payload", zap.Error(err))
		return
	}
	if err := p.redis.Publish(ctx, p.channel, data).Err(); err != nil {
		p.log.Warn("redis publish", zap.Error(err))
	}
}
