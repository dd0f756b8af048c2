package ports

import (
	"context"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
)

// CartStore — durable per-session cart persistence (the localStorage
// analog). Load must tolerate missing or corrupt data by returning an
// empty cart and nil error; parse failures never reach the user.
type CartStore interface {
	Load(ctx context.Context, sessionID string) ([]domain.Book, error)
	Save(ctx context.Context, sessionID string, books []domain.Book) error
	Delete(ctx context.Context, sessionID string) error
}
