package main

import (
	"context"
	"flag"
	"log"
	"math/rand"
	"time"

	"github.com/roisan13/orderbook/config"
	"github.com/roisan13/orderbook/pkg/eventlog"
	redis_wrapper "github.com/roisan13/orderbook/pkg/infra/redis"
	"github.com/roisan13/orderbook/pkg/logging"
	"github.com/roisan13/orderbook/pkg/marketdata"
	"github.com/roisan13/orderbook/pkg/orderbook"
	"github.com/roisan13/orderbook/pkg/riskrule"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	minPrice = 9_500
	maxPrice = 10_500
	minQty   = 1
	maxQty   = 100
)

type engine struct {
	log       *zap.Logger
	book      *orderbook.Book
	rules     []riskrule.Rule
	journal   *eventlog.Log
	publisher *marketdata.Publisher
	tickSize  decimal.Decimal
}

func main() {
	configFile := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := logging.NewLogger(logging.ParseLevel(cfg.LogLevel))
	defer func() { _ = logger.Sync() }()
	zlog := logger.Zap().With(zap.String("service", cfg.ServiceName))

	tickSize, err := decimal.NewFromString(cfg.Engine.TickSize)
	if err != nil {
		zlog.Fatal("parse tick size", zap.Error(err))
	}

	eng := &engine{
		log:       zlog,
		book:      orderbook.NewBook(cfg.Engine.Symbol),
		rules:     buildRules(zlog, cfg.Risk),
		journal:   eventlog.NewLog(),
		publisher: marketdata.NewPublisher(zlog),
		tickSize:  tickSize,
	}

	if cfg.Redis != nil && cfg.Feed != nil && cfg.Feed.RedisChannel != "" {
		client, err := redis_wrapper.InitRedis(cfg.Redis)
		if err != nil {
			zlog.Warn("redis unavailable, feed is websocket-only", zap.Error(err))
		} else {
			eng.publisher.WithRedis(client, cfg.Feed.RedisChannel)
		}
	}

	if cfg.Feed != nil && cfg.Feed.ListenAddr != "" {
		server := marketdata.NewServer(zlog, eng.publisher)
		go func() {
			if err := server.ListenAndServe(cfg.Feed.ListenAddr); err != nil {
				zlog.Fatal("feed server", zap.Error(err))
			}
		}()
	}

	eng.run(context.Background())
}

func buildRules(zlog *zap.Logger, cfg *config.RiskConfig) []riskrule.Rule {
	if cfg == nil {
		return nil
	}
	rules := []riskrule.Rule{riskrule.NewPriceBandRule(cfg.PriceFloor, cfg.PriceCeil)}
	if cfg.TickRuleFile != "" {
		tickRule, err := riskrule.NewTickSizeRuleFromFile(cfg.TickRuleFile)
		if err != nil {
			zlog.Fatal("load tick rule", zap.Error(err))
		}
		rules = append(rules, tickRule)
	}
	return rules
}

// run feeds the book a synthetic order stream until the process is killed.
func (e *engine) run(ctx context.Context) {
	e.log.Info("engine started", zap.String("symbol", e.book.Symbol()))

	ticker := time.NewTicker(time.Millisecond)
	defer ticker.Stop()

	nextID := orderbook.OrderID(1)
	for range ticker.C {
		order := randomOrder(nextID)
		nextID++
		e.submit(ctx, order)

		if nextID%1000 == 0 {
			infos := e.book.GetOrderInfos()
			e.log.Info("book status",
				zap.Int("size", e.book.Size()),
				zap.Int("pending_stops", e.book.PendingStopCount()),
				zap.Int("bid_levels", len(infos.Bids)),
				zap.Int("ask_levels", len(infos.Asks)),
			)
		}
	}
}

func (e *engine) submit(ctx context.Context, order *orderbook.Order) {
	if err := riskrule.CheckAll(e.rules, order); err != nil {
		e.journal.Append(eventlog.NewEvent(eventlog.KindRejected, order.ID(), order.Price(), order.RemainingQuantity()))
		e.log.Debug("order rejected", zap.Uint64("order_id", order.ID()), zap.Error(err))
		return
	}

	trades, err := e.book.AddOrder(order)
	if err != nil {
		e.log.Error("add order", zap.Uint64("order_id", order.ID()), zap.Error(err))
		return
	}
	e.journal.Append(eventlog.NewEvent(eventlog.KindNew, order.ID(), order.Price(), order.InitialQuantity()))

	for _, trade := range trades {
		e.journal.Append(eventlog.NewEvent(eventlog.KindTrade, trade.Bid.OrderID, trade.Bid.Price, trade.Bid.Quantity))
		e.journal.Append(eventlog.NewEvent(eventlog.KindTrade, trade.Ask.OrderID, trade.Ask.Price, trade.Ask.Quantity))
		e.publisher.PublishTrade(ctx, marketdata.PrintFromTrade(e.book.Symbol(), e.tickSize, trade))
	}
	if len(trades) > 0 {
		depth := marketdata.DepthFromLevelInfos(e.book.Symbol(), e.tickSize, e.book.GetOrderInfos())
		e.publisher.PublishDepth(ctx, depth)
	}
}

func randomOrder(id orderbook.OrderID) *orderbook.Order {
	side := orderbook.Buy
	if rand.Intn(2) == 0 {
		side = orderbook.Sell
	}
	price := orderbook.Price(minPrice + rand.Int31n(maxPrice-minPrice+1))
	qty := orderbook.Quantity(rand.Intn(maxQty-minQty+1) + minQty)

	switch rand.Intn(10) {
	case 0:
		return orderbook.NewOrder(orderbook.Market, id, side, 0, qty)
	case 1:
		return orderbook.NewOrder(orderbook.FillAndKill, id, side, price, qty)
	case 2:
		return orderbook.NewOrder(orderbook.PostOnly, id, side, price, qty)
	default:
		return orderbook.NewOrder(orderbook.GoodTillCancel, id, side, price, qty)
	}
}
