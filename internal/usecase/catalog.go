package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
)

// CatalogStore — in-memory snapshot of the backend catalog. The
// backend owns availability; this holder is replaced wholesale on
// Reload and never mutated in place.
type CatalogStore struct {
	gateway ports.BookGateway
	log     ports.Logger

	mu     sync.RWMutex
	books  []domain.Book
	byCode map[string]domain.Book
}

func NewCatalogStore(gateway ports.BookGateway, log ports.Logger) *CatalogStore {
	return &CatalogStore{
		gateway: gateway,
		log:     log,
		byCode:  make(map[string]domain.Book),
	}
}

// Reload — fetches the catalog and swaps the snapshot.
func (c *CatalogStore) Reload(ctx context.Context) error {
	start := time.Now()
	books, err := c.gateway.ListBooks(ctx)
	if err != nil {
		return fmt.Errorf("reload catalog: %w", err)
	}

	byCode := make(map[string]domain.Book, len(books))
	for _, b := range books {
		byCode[b.Code] = b
	}

	c.mu.Lock()
	c.books = books
	c.byCode = byCode
	c.mu.Unlock()

	c.log.Infof(ctx, "catalog reloaded books=%d took=%s", len(books), time.Since(start))
	return nil
}

// Books — copy of the current snapshot, catalog order preserved.
func (c *CatalogStore) Books() []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Book(nil), c.books...)
}

func (c *CatalogStore) Get(code string) (domain.Book, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	b, ok := c.byCode[code]
	return b, ok
}

// Filter — applies the stateless filter to the current snapshot.
func (c *CatalogStore) Filter(f domain.BookFilter) []domain.Book {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return f.Apply(c.books)
}

func (c *CatalogStore) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.books)
}
