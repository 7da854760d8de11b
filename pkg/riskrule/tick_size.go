package riskrule

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/roisan13/orderbook/pkg/orderbook"
)

type tickSizeBand struct {
	MaxPrice int32 `json:"maxPrice"` // 0 = no limit
	Step     int32 `json:"step"`
}

// TickSizeRule validates that a price sits on the tick grid of its band.
type TickSizeRule struct {
	bands []tickSizeBand
}

// NewTickSizeRuleFromFile loads the band table from a JSON file.
func NewTickSizeRuleFromFile(path string) (*TickSizeRule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var bands []tickSizeBand
	if err := json.Unmarshal(data, &bands); err != nil {
		return nil, err
	}

	return &TickSizeRule{bands: bands}, nil
}

func NewTickSizeRule(step int32) *TickSizeRule {
	return &TickSizeRule{bands: []tickSizeBand{{Step: step}}}
}

func (r *TickSizeRule) Check(order *orderbook.Order) error {
	if order.Type() == orderbook.Market {
		return nil
	}

	price := order.Price()
	for _, band := range r.bands {
		if band.MaxPrice == 0 || price <= band.MaxPrice {
			if band.Step > 1 && price%band.Step != 0 {
				return fmt.Errorf("price %d not on tick grid %d", price, band.Step)
			}
			return nil
		}
	}

	return nil
}
