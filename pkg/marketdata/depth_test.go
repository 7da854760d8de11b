package marketdata

import (
	"testing"

	"github.com/roisan13/orderbook/pkg/orderbook"
	"github.com/shopspring/decimal"
)

func TestDepthFromLevelInfos(t *testing.T) {
	tick := decimal.RequireFromString("0.01")
	infos := orderbook.LevelInfos{
		Bids: []orderbook.LevelInfo{{Price: 9950, Quantity: 25}, {Price: 9900, Quantity: 10}},
		Asks: []orderbook.LevelInfo{{Price: 10000, Quantity: 7}},
	}

	depth := DepthFromLevelInfos("ABC", tick, infos)

	if depth.Symbol != "ABC" {
		t.Errorf("symbol = %q", depth.Symbol)
	}
	if len(depth.Bids) != 2 || len(depth.Asks) != 1 {
		t.Fatalf("levels = %+v", depth)
	}
	if !depth.Bids[0].Price.Equal(decimal.RequireFromString("99.50")) {
		t.Errorf("best bid display price = %s, want 99.50", depth.Bids[0].Price)
	}
	if !depth.Asks[0].Price.Equal(decimal.RequireFromString("100.00")) {
		t.Errorf("best ask display price = %s, want 100.00", depth.Asks[0].Price)
	}
	if depth.Bids[0].Quantity != 25 {
		t.Errorf("best bid quantity = %d, want 25", depth.Bids[0].Quantity)
	}
}

func TestPrintFromTrade(t *testing.T) {
	tick := decimal.RequireFromString("0.5")
	trade := orderbook.Trade{
		Bid: orderbook.TradeInfo{OrderID: 2, Price: 200, Quantity: 10},
		Ask: orderbook.TradeInfo{OrderID: 1, Price: 200, Quantity: 10},
	}

	print := PrintFromTrade("ABC", tick, trade)

	if print.BidOrderID != 2 || print.AskOrderID != 1 {
		t.Errorf("ids = %+v", print)
	}
	if !print.Price.Equal(decimal.RequireFromString("100")) {
		t.Errorf("display price = %s, want 100", print.Price)
	}
	if print.Quantity != 10 {
		t.Errorf("quantity = %d, want 10", print.Quantity)
	}
}

func TestHubBroadcastAndUnsubscribe(t *testing.T) {
	hub := NewHub[int]()

	a := hub.Subscribe(4)
	b := hub.Subscribe(4)

	hub.Broadcast(7)
	if got := <-a.C(); got != 7 {
		t.Errorf("a got %d, want 7", got)
	}
	if got := <-b.C(); got != 7 {
		t.Errorf("b got %d, want 7", got)
	}

	hub.Unsubscribe(a)
	if _, ok := <-a.C(); ok {
		t.Error("unsubscribed channel must be closed")
	}

	// Double unsubscribe must not panic.
	hub.Unsubscribe(a)

	hub.Broadcast(8)
	if got := <-b.C(); got != 8 {
		t.Errorf("b got %d, want 8", got)
	}
}

func TestHubDropsWhenSubscriberIsFull(t *testing.T) {
	hub := NewHub[int]()
	sub := hub.Subscribe(1)

	hub.Broadcast(1)
	hub.Broadcast(2) // dropped, buffer full

	if got := <-sub.C(); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
	select {
	case v := <-sub.C():
		t.Errorf("unexpected value %d", v)
	default:
	}
}
