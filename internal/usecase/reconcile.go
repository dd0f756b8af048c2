package usecase

import (
	"context"
	"fmt"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/pkg/metrics"
)

// reconcileLocked — re-checks every cart entry against the backend and
// prunes the ones that are gone. Codes the backend no longer reports
// at all are treated as unavailable, same as an explicit negative.
// Relative order of survivors is preserved. sess.mu must be held.
//
// On a backend or transport failure the cart is left untouched; the
// caller decides whether to proceed optimistically or abort.
func (s *Storefront) reconcileLocked(ctx context.Context, sess *Session) ([]domain.RemovedBook, error) {
	if len(sess.cart) == 0 {
		return nil, nil
	}

	codes := make([]string, 0, len(sess.cart))
	for _, b := range sess.cart {
		codes = append(codes, b.Code)
	}

	avail, err := s.gateway.CheckAvailability(ctx, codes)
	if err != nil {
		return nil, fmt.Errorf("check availability: %w", err)
	}

	kept := sess.cart[:0]
	var removed []domain.RemovedBook
	for _, b := range sess.cart {
		a, ok := avail[b.Code]
		switch {
		case !ok:
			removed = append(removed, domain.RemovedBook{Code: b.Code, Status: domain.StatusUnavailable})
		case !a.Available:
			status := a.Status
			if status == "" {
				status = domain.StatusUnavailable
			}
			removed = append(removed, domain.RemovedBook{Code: b.Code, Status: status})
		default:
			kept = append(kept, b)
		}
	}
	sess.cart = kept

	if len(removed) > 0 {
		metrics.CartReconciled.Add(float64(len(removed)))
		s.persistLocked(ctx, sess)
		s.log.Infof(ctx, "session %s: reconciliation pruned %d of %d items", sess.id, len(removed), len(codes))
	}
	return removed, nil
}
