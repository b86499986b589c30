package core

import (
	"encoding/binary"
	"iter"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a stable numeric identifier derived from catalog content.
// Identical content always produces the same ID.
type ID uint64

// IDFromCode generates a deterministic ID from a product code using BLAKE2b
// hashing. Used for compact storage keys and catalog fingerprints.
func IDFromCode(code string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(code))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// NoCode is the placeholder assigned to line items whose code is absent.
const NoCode = "SIN-CODIGO"

// LineItem is a single raw record from the catalog payload. One product code
// typically appears in several line items, one per sales unit.
type LineItem struct {
	Code        string `json:"codigo"`
	Description string `json:"descripcion"`
	Unit        string `json:"unidad"`
	Price       string `json:"precio"`
	Stock       string `json:"stock"`
	UnitPrice   string `json:"precio_unit"`
}

// Variant is one unit/price/stock combination under a product code
// (e.g. "UND" vs "CJA"). Prices are normalized to two fraction digits.
// Variants are created during grouping and never mutated afterwards.
type Variant struct {
	Unit      string
	Price     string
	Stock     string
	UnitPrice string
}

// Product groups every line item sharing a code. SearchText is the compact
// normalization of code+description computed once at grouping time.
type Product struct {
	Id          ID
	Code        string
	Description string
	SearchText  string
	Variants    []Variant
}

// Primary returns the display variant: the first one encountered in the
// input sequence. Returns a zero Variant if the product has none.
func (p *Product) Primary() Variant {
	if len(p.Variants) == 0 {
		return Variant{}
	}
	return p.Variants[0]
}

// Catalog is an ordered, read-only collection of grouped products. Iteration
// order is the first-seen order of codes in the input sequence. A catalog is
// built once per load and replaced wholesale on reload.
type Catalog struct {
	byCode      map[string]*Product
	order       []string
	fingerprint ID
}

// NewCatalog builds a catalog from products already grouped in first-seen
// order. Duplicate codes keep the first occurrence.
func NewCatalog(products []*Product) *Catalog {
	c := &Catalog{
		byCode: make(map[string]*Product, len(products)),
		order:  make([]string, 0, len(products)),
	}
	h, _ := blake2b.New(8, nil)
	for _, p := range products {
		if _, seen := c.byCode[p.Code]; seen {
			continue
		}
		c.byCode[p.Code] = p
		c.order = append(c.order, p.Code)
		h.Write([]byte(p.SearchText))
	}
	c.fingerprint = ID(binary.LittleEndian.Uint64(h.Sum(nil)))
	return c
}

// Get returns the product for a code, if present.
func (c *Catalog) Get(code string) (*Product, bool) {
	p, ok := c.byCode[code]
	return p, ok
}

// Len returns the number of distinct products.
func (c *Catalog) Len() int {
	return len(c.order)
}

// Products iterates products in first-seen order.
func (c *Catalog) Products() iter.Seq[*Product] {
	return func(yield func(*Product) bool) {
		for _, code := range c.order {
			if !yield(c.byCode[code]) {
				return
			}
		}
	}
}

// Codes returns the product codes in first-seen order.
func (c *Catalog) Codes() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Fingerprint is a content hash over the catalog's searchable text, useful
// for telling reloads of identical payloads apart from real changes.
func (c *Catalog) Fingerprint() ID {
	return c.fingerprint
}

// MaxStatsTerms caps the recent-terms list kept per product code.
const MaxStatsTerms = 5

// SearchStats accumulates search events for one product code. Mutated on
// every recorded event and persisted through the stats repository.
type SearchStats struct {
	Count        int
	LastSearched time.Time
	Terms        []string       // unique, most recent first, capped at MaxStatsTerms
	Sources      map[string]int // event counts per source label
}

// PopularProduct is one row of the popularity view: a product code with its
// accumulated stats, ordered by count and recency.
type PopularProduct struct {
	Code         string
	Count        int
	LastSearched time.Time
	Terms        []string
	Sources      map[string]int
}
