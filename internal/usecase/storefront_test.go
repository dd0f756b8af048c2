package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports/mocks"
	"github.com/paulkisakye-beep/little-readers/internal/usecase"
)

const sessionID = "sess-1"

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

var (
	bookA = domain.Book{Code: "BK-001", Title: "The Gruffalo", Author: "Julia Donaldson",
		Category: "picture", AgeGroup: "3-5", Price: 15000, Available: true, Status: domain.StatusAvailable}
	bookB = domain.Book{Code: "BK-002", Title: "Matilda", Author: "Roald Dahl",
		Category: "chapter", AgeGroup: "6-9", Price: 12000, Available: true, Status: domain.StatusAvailable}
	bookC = domain.Book{Code: "BK-003", Title: "Charlotte's Web", Author: "E. B. White",
		Category: "chapter", AgeGroup: "6-9", Price: 280000, Available: true, Status: domain.StatusAvailable}
)

type fixture struct {
	gw        *mocks.MockBookGateway
	carts     *mocks.MockCartStore
	validator *mocks.MockOrderValidator
	sf        *usecase.Storefront
}

// newFixture — storefront with a warmed catalog and an open session.
// The auto-close delay is huge so the post-order reload timer never
// fires inside a test.
func newFixture(t *testing.T, catalog ...domain.Book) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		gw:        mocks.NewMockBookGateway(ctrl),
		carts:     mocks.NewMockCartStore(ctrl),
		validator: mocks.NewMockOrderValidator(ctrl),
	}

	log := noopLogger{}
	cs := usecase.NewCatalogStore(f.gw, log)
	f.sf = usecase.NewStorefront(f.gw, f.carts, f.validator, cs, log, time.Hour)

	if len(catalog) > 0 {
		f.gw.EXPECT().ListBooks(gomock.Any()).Return(append([]domain.Book(nil), catalog...), nil)
		if err := cs.Reload(context.Background()); err != nil {
			t.Fatalf("warm catalog: %v", err)
		}
	}

	f.carts.EXPECT().Load(gomock.Any(), sessionID).Return([]domain.Book{}, nil)
	if _, err := f.sf.OpenSession(context.Background(), sessionID); err != nil {
		t.Fatalf("open session: %v", err)
	}
	return f
}

func (f *fixture) allowPersist() {
	f.carts.EXPECT().Save(gomock.Any(), sessionID, gomock.Any()).Return(nil).AnyTimes()
	f.carts.EXPECT().Delete(gomock.Any(), sessionID).Return(nil).AnyTimes()
}

func TestOpenSession_RestoresPersistedCart(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookGateway(ctrl)
	carts := mocks.NewMockCartStore(ctrl)
	validator := mocks.NewMockOrderValidator(ctrl)
	log := noopLogger{}

	sf := usecase.NewStorefront(gw, carts, validator, usecase.NewCatalogStore(gw, log), log, time.Hour)

	carts.EXPECT().Load(gomock.Any(), "returning").Return([]domain.Book{bookA}, nil)
	sess, err := sf.OpenSession(context.Background(), "returning")
	if err != nil {
		t.Fatalf("open session: %v", err)
	}
	if sess.ID() != "returning" {
		t.Fatalf("want session id preserved, got %q", sess.ID())
	}

	state, err := sf.Cart(context.Background(), "returning")
	if err != nil || len(state.Items) != 1 || state.Items[0].Code != bookA.Code {
		t.Fatalf("want restored cart, got err=%v state=%+v", err, state)
	}
}

func TestOpenSession_GeneratesID(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookGateway(ctrl)
	carts := mocks.NewMockCartStore(ctrl)
	log := noopLogger{}

	sf := usecase.NewStorefront(gw, carts, mocks.NewMockOrderValidator(ctrl), usecase.NewCatalogStore(gw, log), log, time.Hour)

	carts.EXPECT().Load(gomock.Any(), gomock.Any()).Return([]domain.Book{}, nil)
	sess, err := sf.OpenSession(context.Background(), "")
	if err != nil || sess.ID() == "" {
		t.Fatalf("want generated id, got err=%v id=%q", err, sess.ID())
	}
}

func TestCart_UnknownSession(t *testing.T) {
	f := newFixture(t, bookA)

	if _, err := f.sf.Cart(context.Background(), "ghost"); err != domain.ErrSessionNotFound {
		t.Fatalf("want ErrSessionNotFound, got %v", err)
	}
}
