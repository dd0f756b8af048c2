package appsscript

import (
	"context"
	"strings"
	"time"

	cachemem "github.com/paulkisakye-beep/little-readers/internal/cache/memory"
	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
)

var _ ports.BookGateway = (*CachedGateway)(nil)

// CacheConfig — TTLs for the idempotent, slow-changing lookups.
// PriceTTL of 0 disables delivery-price caching entirely; area text is
// free-form, so when enabled the key is the trimmed lower-cased input.
type CacheConfig struct {
	Capacity int
	AreasTTL time.Duration
	PromoTTL time.Duration
	PriceTTL time.Duration
}

// CachedGateway decorates a BookGateway with caching for delivery
// areas, promo validations and (optionally) delivery prices. Books and
// availability are never cached: staleness there costs a sale.
type CachedGateway struct {
	ports.BookGateway

	areas  *cachemem.LRUCacheTTL[[]string]
	promos *cachemem.LRUCacheTTL[domain.Promo]
	prices *cachemem.LRUCacheTTL[domain.DeliveryQuote]

	priceCaching bool
}

const areasKey = "delivery-areas"

func NewCachedGateway(next ports.BookGateway, cfg CacheConfig) *CachedGateway {
	cap := cfg.Capacity
	if cap <= 0 {
		cap = 512
	}
	g := &CachedGateway{
		BookGateway:  next,
		areas:        cachemem.NewLRUCacheTTL[[]string]("delivery_areas", 1, cfg.AreasTTL),
		promos:       cachemem.NewLRUCacheTTL[domain.Promo]("promo", cap, cfg.PromoTTL),
		priceCaching: cfg.PriceTTL > 0,
	}
	if g.priceCaching {
		g.prices = cachemem.NewLRUCacheTTL[domain.DeliveryQuote]("delivery_price", cap, cfg.PriceTTL)
	}
	return g
}

func (g *CachedGateway) DeliveryAreas(ctx context.Context) ([]string, error) {
	if areas, ok := g.areas.Get(ctx, areasKey); ok {
		return append([]string(nil), areas...), nil
	}
	areas, err := g.BookGateway.DeliveryAreas(ctx)
	if err != nil {
		return nil, err
	}
	_ = g.areas.Set(ctx, areasKey, append([]string(nil), areas...))
	return areas, nil
}

func (g *CachedGateway) ValidatePromo(ctx context.Context, code string) (*domain.Promo, error) {
	key := strings.ToUpper(strings.TrimSpace(code))
	if key == "" {
		return nil, nil
	}

	if p, ok := g.promos.Get(ctx, key); ok {
		if p.Code == "" {
			// negative entry: known-invalid code
			return nil, nil
		}
		clone := p
		return &clone, nil
	}

	promo, err := g.BookGateway.ValidatePromo(ctx, key)
	if err != nil {
		return nil, err
	}
	if promo == nil {
		_ = g.promos.Set(ctx, key, domain.Promo{})
		return nil, nil
	}
	_ = g.promos.Set(ctx, key, *promo)
	clone := *promo
	return &clone, nil
}

func (g *CachedGateway) DeliveryPrice(ctx context.Context, area string) (*domain.DeliveryQuote, error) {
	if !g.priceCaching {
		return g.BookGateway.DeliveryPrice(ctx, area)
	}

	key := strings.ToLower(strings.TrimSpace(area))
	if key == "" {
		return g.BookGateway.DeliveryPrice(ctx, area)
	}

	if q, ok := g.prices.Get(ctx, key); ok {
		if q.Matched == "" {
			// negative entry: area known not deliverable
			return nil, nil
		}
		clone := q
		return &clone, nil
	}

	quote, err := g.BookGateway.DeliveryPrice(ctx, area)
	if err != nil {
		return nil, err
	}
	if quote == nil {
		_ = g.prices.Set(ctx, key, domain.DeliveryQuote{})
		return nil, nil
	}
	_ = g.prices.Set(ctx, key, *quote)
	clone := *quote
	return &clone, nil
}
