package riskrule

import "github.com/roisan13/orderbook/pkg/orderbook"

// Rule rejects orders before they reach the book. Rejected orders are
// never submitted.
type Rule interface {
	Check(order *orderbook.Order) error
}

// CheckAll runs every rule in sequence and returns the first rejection.
func CheckAll(rules []Rule, order *orderbook.Order) error {
	for _, rule := range rules {
		if err := rule.Check(order); err != nil {
			return err
		}
	}
	return nil
}
