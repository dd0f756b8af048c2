// Package file persists carts as one JSON file per session under a
// data directory. It plays the role browser localStorage plays for the
// storefront: durable across reloads, cheap, and disposable — corrupt
// or missing data silently restores as an empty cart.
package file

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports"
)

var _ ports.CartStore = (*Store)(nil)

// Session ids are uuids; anything else is refused so a crafted id can
// never escape the cart directory.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9-]{1,64}$`)

var errBadSessionID = errors.New("invalid session id")

type Store struct {
	dir string
}

// NewStore — creates the cart directory if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cart dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Load — returns the persisted cart, or an empty cart when the file is
// missing or unreadable. Parse failures are deliberately swallowed: a
// broken cart file must never surface as a user error.
func (s *Store) Load(_ context.Context, sessionID string) ([]domain.Book, error) {
	path, err := s.path(sessionID)
	if err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return []domain.Book{}, nil
	}

	var books []domain.Book
	if err := json.Unmarshal(raw, &books); err != nil {
		return []domain.Book{}, nil
	}
	if books == nil {
		books = []domain.Book{}
	}
	return books, nil
}

// Save — writes the cart atomically (temp file + rename) so a crash
// mid-write leaves either the old cart or the new one, never garbage.
func (s *Store) Save(_ context.Context, sessionID string, books []domain.Book) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}

	raw, err := json.Marshal(books)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("write cart: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("replace cart: %w", err)
	}
	return nil
}

// Delete — removes the persisted cart; missing file is not an error.
func (s *Store) Delete(_ context.Context, sessionID string) error {
	path, err := s.path(sessionID)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}

func (s *Store) path(sessionID string) (string, error) {
	if !sessionIDPattern.MatchString(sessionID) {
		return "", fmt.Errorf("%w: %q", errBadSessionID, sessionID)
	}
	return filepath.Join(s.dir, sessionID+".json"), nil
}
