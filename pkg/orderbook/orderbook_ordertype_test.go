package orderbook

import "testing"

func TestMarketOrderFullMatch(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 10))
	trades, _ := book.AddOrder(NewOrder(Market, 2, Buy, 0, 10))

	if len(trades) != 1 || trades[0].Bid.Quantity != 10 {
		t.Fatalf("expected full market match, got %+v", trades)
	}
	if trades[0].Bid.Price != 100 {
		t.Errorf("market order must trade at the maker's price, got %d", trades[0].Bid.Price)
	}
}

func TestMarketOrderSweepsLevels(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Buy, 99, 5))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Buy, 98, 5))

	trades, _ := book.AddOrder(NewOrder(Market, 3, Sell, 0, 10))

	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %+v", trades)
	}
	if trades[0].Bid.Price != 99 || trades[1].Bid.Price != 98 {
		t.Errorf("expected best-first sweep, got %+v", trades)
	}
}

func TestMarketOrderResidualNeverRests(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 5))
	trades, _ := book.AddOrder(NewOrder(Market, 2, Buy, 0, 10))

	if len(trades) != 1 || trades[0].Bid.Quantity != 5 {
		t.Fatalf("expected partial fill of 5, got %+v", trades)
	}
	if book.Size() != 0 {
		t.Errorf("market residual must be discarded, size = %d", book.Size())
	}
}

func TestFillAndKillPartialMatch(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 5))
	trades, _ := book.AddOrder(NewOrder(FillAndKill, 2, Buy, 101, 10))

	if len(trades) != 1 || trades[0].Bid.Quantity != 5 {
		t.Fatalf("expected partial IOC fill of 5, got %+v", trades)
	}
	if book.Size() != 0 {
		t.Errorf("IOC residual must be discarded, size = %d", book.Size())
	}
}

func TestFillAndKillUncrossableReturnsEmpty(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 105, 10))
	trades, _ := book.AddOrder(NewOrder(FillAndKill, 2, Buy, 100, 10))

	if len(trades) != 0 {
		t.Errorf("uncrossable IOC must return empty, got %+v", trades)
	}
	if book.Size() != 1 {
		t.Errorf("book must be untouched, size = %d", book.Size())
	}
}

func TestFillOrKillFullMatchAcrossLevels(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 30))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Sell, 101, 50))

	trades, _ := book.AddOrder(NewOrder(FillOrKill, 3, Buy, 101, 80))

	if len(trades) != 2 {
		t.Fatalf("expected 2 trades, got %+v", trades)
	}
	total := Quantity(0)
	for _, trade := range trades {
		total += trade.Bid.Quantity
	}
	if total != 80 {
		t.Errorf("FOK must fill in full, filled %d", total)
	}
	if book.Size() != 0 {
		t.Errorf("size = %d, want 0", book.Size())
	}
}

func TestFillOrKillRejectLeavesBookIntact(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 30))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Sell, 101, 50))

	trades, _ := book.AddOrder(NewOrder(FillOrKill, 3, Buy, 101, 90))

	if len(trades) != 0 {
		t.Errorf("unfillable FOK must return empty, got %+v", trades)
	}
	if book.Size() != 2 {
		t.Errorf("size = %d, want 2", book.Size())
	}
	infos := book.GetOrderInfos()
	if len(infos.Asks) != 2 || infos.Asks[0].Quantity != 30 || infos.Asks[1].Quantity != 50 {
		t.Errorf("ask levels changed: %+v", infos.Asks)
	}
}

func TestFillOrKillCountsOnlyCrossableLevels(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 30))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Sell, 102, 50))

	// 80 available in total but only 30 within the limit price.
	trades, _ := book.AddOrder(NewOrder(FillOrKill, 3, Buy, 101, 60))

	if len(trades) != 0 {
		t.Errorf("liquidity beyond the limit must not count, got %+v", trades)
	}
	if book.Size() != 2 {
		t.Errorf("size = %d, want 2", book.Size())
	}
}

func TestPostOnlyCrossingIsRejected(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 10))
	trades, _ := book.AddOrder(NewOrder(PostOnly, 2, Buy, 100, 10))

	if len(trades) != 0 {
		t.Errorf("crossing post-only must return empty, got %+v", trades)
	}
	if book.Size() != 1 {
		t.Errorf("only the ask should remain, size = %d", book.Size())
	}
}

func TestPostOnlyRestsWhenPassive(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 10))
	trades, _ := book.AddOrder(NewOrder(PostOnly, 2, Buy, 99, 10))

	if len(trades) != 0 {
		t.Errorf("passive post-only must not trade, got %+v", trades)
	}
	if book.Size() != 2 {
		t.Errorf("size = %d, want 2", book.Size())
	}
	infos := book.GetOrderInfos()
	if len(infos.Bids) != 1 || infos.Bids[0].Price != 99 {
		t.Errorf("post-only should rest at 99, got %+v", infos.Bids)
	}
}
