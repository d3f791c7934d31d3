package equity

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
)

// Dimension is a parameter a sensitivity sweep varies.
type Dimension int

const (
	OptionRedemption Dimension = iota
	CommonRedemption
	Growth
)

var dimensionNames = []string{"option-rate", "common-rate", "growth"}

func (d Dimension) String() string {
	if d < 0 || int(d) >= len(dimensionNames) {
		return fmt.Sprintf("dimension(%d)", int(d))
	}
	return dimensionNames[d]
}

// ParseDimension parses "option-rate", "common-rate" or "growth".
func ParseDimension(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range dimensionNames {
		if s == name {
			return Dimension(i), nil
		}
	}
	return 0, fmt.Errorf("unknown dimension %q, must be one of %s", s, strings.Join(dimensionNames, ", "))
}

// Apply returns a copy of p with the dimension set to v.
func (d Dimension) Apply(p Params, v Rate) Params {
	switch d {
	case OptionRedemption:
		p.OptionRedemptionRate = v
	case CommonRedemption:
		p.CommonRedemptionRate = v
	case Growth:
		p.GrowthRate = v
	}
	return p
}

// Variant is one projection of a sweep.
type Variant struct {
	Dimension Dimension
	Value     Rate
	Params    Params
	Ledger    *Ledger
}

// Label returns a display label such as "5% option-rate".
func (v Variant) Label() string { return v.Value.String() + " " + v.Dimension.String() }

// Sweep projects p once per value of the dimension, in parallel, and returns
// the variants in the order of values. Every variant is validated first. The
// cache may be nil.
func Sweep(ctx context.Context, cache *Cache, p Params, d Dimension, values []Rate) ([]Variant, error) {
	variants := make([]Variant, len(values))
	for i, v := range values {
		vp := d.Apply(p, v)
		if err := vp.Validate(); err != nil {
			return nil, fmt.Errorf("variant %s: %w", v, err)
		}
		variants[i] = Variant{Dimension: d, Value: v, Params: vp}
	}

	g, ctx := errgroup.WithContext(ctx)
	for i := range variants {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			variants[i].Ledger = cache.Project(variants[i].Params)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return variants, nil
}

// Cache memoizes ledgers by Params.Key within a rendering pass, so every chart
// reuses the ledgers already projected. A nil *Cache projects every time.
type Cache struct {
	mu      sync.Mutex
	ledgers map[string]*Ledger
	misses  int
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{ledgers: make(map[string]*Ledger)} }

// Project returns the cached ledger for p, projecting it on first use.
func (c *Cache) Project(p Params) *Ledger {
	if c == nil {
		return Project(p)
	}
	key := p.Key()
	c.mu.Lock()
	l, ok := c.ledgers[key]
	c.mu.Unlock()
	if ok {
		return l
	}

	l = Project(p)

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.ledgers[key]; ok {
		return cached // another goroutine won.
	}
	if c.ledgers == nil {
		c.ledgers = make(map[string]*Ledger)
	}
	c.ledgers[key] = l
	c.misses++
	return l
}

// Len returns the number of distinct ledgers projected.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.misses
}
