package orderbook

import "testing"

func TestModifyChangesPriceAndQuantity(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Buy, 100, 10))

	trades, err := book.ModifyOrder(NewOrderModify(1, Buy, 105, 5))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("no opposing liquidity, expected no trades, got %+v", trades)
	}

	infos := book.GetOrderInfos()
	if len(infos.Bids) != 1 || infos.Bids[0].Price != 105 || infos.Bids[0].Quantity != 5 {
		t.Errorf("bids = %+v, want one level 105/5", infos.Bids)
	}
}

func TestModifyLosesTimePriority(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 100, 10))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Sell, 100, 10))

	// Re-pricing to the same level moves id=1 behind id=2.
	if _, err := book.ModifyOrder(NewOrderModify(1, Sell, 100, 10)); err != nil {
		t.Fatalf("modify: %v", err)
	}

	trades, _ := book.AddOrder(NewOrder(GoodTillCancel, 3, Buy, 100, 10))
	if len(trades) != 1 || trades[0].Ask.OrderID != 2 {
		t.Errorf("expected id=2 to trade first after replace, got %+v", trades)
	}
}

func TestModifyUnknownIDReturnsEmpty(t *testing.T) {
	book := NewBook("TEST")

	trades, err := book.ModifyOrder(NewOrderModify(42, Buy, 100, 10))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(trades) != 0 || book.Size() != 0 {
		t.Errorf("unknown id must be a silent empty return, trades=%+v size=%d", trades, book.Size())
	}
}

func TestModifyCanCrossAndTrade(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 1, Sell, 105, 10))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Buy, 100, 10))

	trades, err := book.ModifyOrder(NewOrderModify(2, Buy, 105, 10))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(trades) != 1 || trades[0].Ask.OrderID != 1 || trades[0].Ask.Price != 105 {
		t.Fatalf("expected replacement to trade against id=1 at 105, got %+v", trades)
	}
	if book.Size() != 0 {
		t.Errorf("size = %d, want 0", book.Size())
	}
}

func TestModifyKeepsOrderType(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewOrder(PostOnly, 1, Buy, 99, 10))
	_, _ = book.AddOrder(NewOrder(GoodTillCancel, 2, Sell, 100, 10))

	// The replacement inherits PostOnly, so crossing to 100 cancels it.
	trades, err := book.ModifyOrder(NewOrderModify(1, Buy, 100, 10))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("post-only replacement must not trade, got %+v", trades)
	}
	if book.Size() != 1 {
		t.Errorf("only the ask should remain, size = %d", book.Size())
	}
}

func TestModifyPendingStopIsNoop(t *testing.T) {
	book := NewBook("TEST")

	_, _ = book.AddOrder(NewStopOrder(1, Buy, 99, 5))

	trades, err := book.ModifyOrder(NewOrderModify(1, Buy, 98, 5))
	if err != nil {
		t.Fatalf("modify: %v", err)
	}
	if len(trades) != 0 {
		t.Errorf("stop modify must return empty, got %+v", trades)
	}
	if book.PendingStopCount() != 1 {
		t.Errorf("pending stops = %d, want 1", book.PendingStopCount())
	}
}
