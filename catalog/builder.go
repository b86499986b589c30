// Copyright 2026 Mercaderia Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package catalog

import (
	"context"
	"log/slog"
	"runtime"
	"strings"
	"sync"

	"github.com/mercaderia/pricebook/core"
	"github.com/mercaderia/pricebook/search"
	"github.com/panjf2000/ants/v2"
)

// DefaultUnit is assigned to variants whose line item carries no unit.
const DefaultUnit = "UND"

// defaultStock is assigned to variants whose line item carries no stock.
const defaultStock = "0"

// Builder folds line items into a Catalog. Per-item normalization runs on a
// worker pool; the fold itself is sequential so products keep the order in
// which their codes first appear.
type Builder struct {
	pool   *ants.Pool
	logger *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder) error

// WithPoolSize sets the worker pool size for item normalization.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(b *Builder) error {
		if size < 1 {
			size = 1
		}
		if b.pool != nil {
			b.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		b.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(b *Builder) error {
		if logger == nil {
			logger = slog.Default()
		}
		b.logger = logger
		return nil
	}
}

// NewBuilder creates a catalog builder.
func NewBuilder(opts ...Option) (*Builder, error) {
	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	b := &Builder{
		pool:   pool,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		if optErr := opt(b); optErr != nil {
			b.Release()
			return nil, optErr
		}
	}
	return b, nil
}

// prepared is the per-item result of the normalization phase.
type prepared struct {
	code        string
	description string
	searchText  string
	variant     core.Variant
}

func prepareItem(item core.LineItem) prepared {
	code := strings.TrimSpace(item.Code)
	if code == "" {
		code = core.NoCode
	}
	unit := item.Unit
	if unit == "" {
		unit = DefaultUnit
	}
	stock := item.Stock
	if stock == "" {
		stock = defaultStock
	}
	return prepared{
		code:        code,
		description: item.Description,
		searchText:  search.NormalizeCompact(code + item.Description),
		variant: core.Variant{
			Unit:      unit,
			Price:     core.FormatPrice(item.Price),
			Stock:     stock,
			UnitPrice: core.FormatPrice(item.UnitPrice),
		},
	}
}

// Build groups line items into products and returns the resulting catalog.
// Items sharing a code become variants of one product; the product's
// description and searchable text come from the code's first occurrence.
func (b *Builder) Build(ctx context.Context, items []core.LineItem) (*core.Catalog, error) {
	prep := make([]prepared, len(items))

	var wg sync.WaitGroup
	for i := range items {
		wg.Add(1)
		idx := i
		item := items[i]
		task := func() {
			defer wg.Done()
			prep[idx] = prepareItem(item)
		}
		// A released pool rejects the task; fall back to running inline.
		if err := b.pool.Submit(task); err != nil {
			task()
		}
	}
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	byCode := make(map[string]*core.Product)
	var products []*core.Product
	for _, p := range prep {
		product, ok := byCode[p.code]
		if !ok {
			product = &core.Product{
				Id:          core.IDFromCode(p.code),
				Code:        p.code,
				Description: p.description,
				SearchText:  p.searchText,
			}
			byCode[p.code] = product
			products = append(products, product)
		}
		product.Variants = append(product.Variants, p.variant)
	}

	cat := core.NewCatalog(products)
	b.logger.Info("catalog built", "items", len(items), "products", cat.Len())
	return cat, nil
}

// BuildFromSource loads a payload from the source and builds a catalog from
// its products.
func (b *Builder) BuildFromSource(ctx context.Context, source Source) (*core.Catalog, *Payload, error) {
	if source == nil {
		return nil, nil, ErrSourceRequired
	}
	payload, err := source.Load(ctx)
	if err != nil {
		return nil, nil, err
	}
	cat, err := b.Build(ctx, payload.Products)
	if err != nil {
		return nil, nil, err
	}
	return cat, payload, nil
}

// Release releases the worker pool. The builder should not be used after
// calling Release.
func (b *Builder) Release() {
	if b.pool != nil {
		b.pool.Release()
	}
}
