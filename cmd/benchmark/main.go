package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/roisan13/orderbook/pkg/orderbook"
)

const (
	numOrders = 1_000_000
	minPrice  = 10_000
	maxPrice  = 20_000
	minQty    = 1
	maxQty    = 100
)

func randomOrder(id orderbook.OrderID) *orderbook.Order {
	side := orderbook.Buy
	if rand.Intn(2) == 0 {
		side = orderbook.Sell
	}
	price := orderbook.Price(minPrice + rand.Int31n(maxPrice-minPrice+1))
	qty := orderbook.Quantity(rand.Intn(maxQty-minQty+1) + minQty)

	return orderbook.NewOrder(orderbook.GoodTillCancel, id, side, price, qty)
}

func main() {
	book := orderbook.NewBook("ABC")

	totalMatched := 0
	totalQty := uint64(0)

	start := time.Now()
	for i := 0; i < numOrders; i++ {
		trades, err := book.AddOrder(randomOrder(orderbook.OrderID(i + 1)))
		if err != nil {
			log.Fatalf("add order %d: %v", i+1, err)
		}
		for _, trade := range trades {
			totalMatched++
			totalQty += uint64(trade.Bid.Quantity)
			if totalMatched <= 5 {
				log.Printf("match: BUY[%d] <=> SELL[%d] @ %d qty %d",
					trade.Bid.OrderID, trade.Ask.OrderID, trade.Bid.Price, trade.Bid.Quantity)
			}
		}
	}

	elapsed := time.Since(start)

	fmt.Println("--------")
	fmt.Printf("total orders      : %d\n", numOrders)
	fmt.Printf("total trades      : %d\n", totalMatched)
	fmt.Printf("total traded qty  : %d\n", totalQty)
	fmt.Printf("resting orders    : %d\n", book.Size())
	fmt.Printf("time taken        : %s\n", elapsed)
}
