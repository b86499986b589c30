package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIDFromCode(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, IDFromCode("ABC-123"), IDFromCode("ABC-123"))
	})

	t.Run("different codes produce different ids", func(t *testing.T) {
		assert.NotEqual(t, IDFromCode("ABC-123"), IDFromCode("ABC-124"))
	})

	t.Run("empty code has an id", func(t *testing.T) {
		assert.NotZero(t, IDFromCode(""))
	})
}

func newTestProduct(code, desc, searchText string) *Product {
	return &Product{
		Id:          IDFromCode(code),
		Code:        code,
		Description: desc,
		SearchText:  searchText,
	}
}

func TestNewCatalog(t *testing.T) {
	products := []*Product{
		newTestProduct("A1", "lapicero azul", "a1lapiceroazul"),
		newTestProduct("B2", "borrador", "b2borrador"),
		newTestProduct("C3", "cuaderno", "c3cuaderno"),
	}
	catalog := NewCatalog(products)

	t.Run("length and order", func(t *testing.T) {
		assert.Equal(t, 3, catalog.Len())
		assert.Equal(t, []string{"A1", "B2", "C3"}, catalog.Codes())
	})

	t.Run("lookup", func(t *testing.T) {
		p, ok := catalog.Get("B2")
		require.True(t, ok)
		assert.Equal(t, "borrador", p.Description)

		_, ok = catalog.Get("missing")
		assert.False(t, ok)
	})

	t.Run("iteration follows first-seen order", func(t *testing.T) {
		var codes []string
		for p := range catalog.Products() {
			codes = append(codes, p.Code)
		}
		assert.Equal(t, []string{"A1", "B2", "C3"}, codes)
	})

	t.Run("duplicate codes keep the first product", func(t *testing.T) {
		dup := NewCatalog([]*Product{
			newTestProduct("A1", "first", "a1first"),
			newTestProduct("A1", "second", "a1second"),
		})
		require.Equal(t, 1, dup.Len())
		p, ok := dup.Get("A1")
		require.True(t, ok)
		assert.Equal(t, "first", p.Description)
	})
}

func TestCatalogFingerprint(t *testing.T) {
	build := func(descs ...string) *Catalog {
		products := make([]*Product, len(descs))
		for i, d := range descs {
			products[i] = newTestProduct(d, d, d)
		}
		return NewCatalog(products)
	}

	t.Run("identical content matches", func(t *testing.T) {
		assert.Equal(t, build("a", "b").Fingerprint(), build("a", "b").Fingerprint())
	})

	t.Run("different content differs", func(t *testing.T) {
		assert.NotEqual(t, build("a", "b").Fingerprint(), build("a", "c").Fingerprint())
	})

	t.Run("order matters", func(t *testing.T) {
		assert.NotEqual(t, build("a", "b").Fingerprint(), build("b", "a").Fingerprint())
	})
}

func TestProductPrimary(t *testing.T) {
	p := newTestProduct("A1", "lapicero", "a1lapicero")
	assert.Equal(t, Variant{}, p.Primary())

	p.Variants = append(p.Variants,
		Variant{Unit: "UND", Price: "5.00"},
		Variant{Unit: "CJA", Price: "50.00"},
	)
	assert.Equal(t, "UND", p.Primary().Unit)
}
