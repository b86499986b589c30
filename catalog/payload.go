package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"

	"github.com/mercaderia/pricebook/core"
)

// Metadata carries payload-level bookkeeping published alongside the items.
type Metadata struct {
	LastUpdated string `json:"last_updated"`
}

// PriceChange describes a repriced product in the payload change set.
type PriceChange struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Unit        string `json:"unidad"`
	OldPrice    string `json:"precio_antiguo"`
	NewPrice    string `json:"precio_nuevo"`
}

// Changes lists what moved since the previous payload: brand new items and
// price updates on existing ones.
type Changes struct {
	New    []core.LineItem `json:"nuevos"`
	Prices []PriceChange   `json:"precios"`
}

// Payload is a parsed price-book payload.
type Payload struct {
	Products []core.LineItem `json:"products"`
	Metadata Metadata        `json:"metadata"`
	Changes  Changes         `json:"changes"`
}

// ParsePayload decodes a payload from JSON. Two shapes are accepted: the
// envelope object and, for older feeds, a bare array of line items.
func ParsePayload(data []byte) (*Payload, error) {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var items []core.LineItem
		if err := json.Unmarshal(trimmed, &items); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrUnrecognizedPayload, err)
		}
		return &Payload{Products: items}, nil
	}

	var p Payload
	if err := json.Unmarshal(trimmed, &p); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnrecognizedPayload, err)
	}
	if p.Products == nil {
		return nil, ErrUnrecognizedPayload
	}
	return &p, nil
}

// IsValidPrice reports whether a raw price string parses to a finite number
// greater than zero. Blank and not-a-number markers are invalid.
func IsValidPrice(price string) bool {
	if price == "" || price == "nan" || price == "NaN" {
		return false
	}
	f, err := strconv.ParseFloat(price, 64)
	if err != nil {
		return false
	}
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f > 0
}

// ValidNew returns the new items whose price is valid.
func (c Changes) ValidNew() []core.LineItem {
	var out []core.LineItem
	for _, item := range c.New {
		if IsValidPrice(item.Price) {
			out = append(out, item)
		}
	}
	return out
}

// ValidPriceChanges returns the price changes where both the old and the new
// price are valid.
func (c Changes) ValidPriceChanges() []PriceChange {
	var out []PriceChange
	for _, change := range c.Prices {
		if IsValidPrice(change.OldPrice) && IsValidPrice(change.NewPrice) {
			out = append(out, change)
		}
	}
	return out
}
