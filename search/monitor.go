package search

import "github.com/mercaderia/pricebook/core"

// Monitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type Monitor interface {
	Start(term string)
	CacheHit(term string)
	ExactHit(product *core.Product)
	Scored(product *core.Product, score int)
	Finish(result *Result)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                   {}
func (n *noopMonitor) CacheHit(_ string)                {}
func (n *noopMonitor) ExactHit(_ *core.Product)         {}
func (n *noopMonitor) Scored(_ *core.Product, _ int)    {}
func (n *noopMonitor) Finish(_ *Result)                 {}
