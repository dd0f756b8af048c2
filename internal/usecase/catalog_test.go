package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/ports/mocks"
	"github.com/paulkisakye-beep/little-readers/internal/usecase"
)

func TestCatalogReload_SwapsSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookGateway(ctrl)
	cs := usecase.NewCatalogStore(gw, noopLogger{})

	gw.EXPECT().ListBooks(gomock.Any()).Return([]domain.Book{bookA, bookB}, nil)
	if err := cs.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if cs.Len() != 2 {
		t.Fatalf("want 2 books, got %d", cs.Len())
	}

	gw.EXPECT().ListBooks(gomock.Any()).Return([]domain.Book{bookC}, nil)
	if err := cs.Reload(context.Background()); err != nil {
		t.Fatalf("second reload: %v", err)
	}
	if cs.Len() != 1 {
		t.Fatalf("snapshot must be replaced wholesale, got %d books", cs.Len())
	}
	if _, ok := cs.Get(bookA.Code); ok {
		t.Fatalf("old snapshot leaked through")
	}
}

func TestCatalogReload_FailureKeepsOldSnapshot(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookGateway(ctrl)
	cs := usecase.NewCatalogStore(gw, noopLogger{})

	gw.EXPECT().ListBooks(gomock.Any()).Return([]domain.Book{bookA}, nil)
	if err := cs.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	gw.EXPECT().ListBooks(gomock.Any()).Return(nil, errors.New("timeout"))
	if err := cs.Reload(context.Background()); err == nil {
		t.Fatalf("want reload error")
	}
	if cs.Len() != 1 {
		t.Fatalf("failed reload must keep the previous snapshot")
	}
}

func TestCatalogFilter(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockBookGateway(ctrl)
	cs := usecase.NewCatalogStore(gw, noopLogger{})

	gw.EXPECT().ListBooks(gomock.Any()).Return([]domain.Book{bookA, bookB, bookC}, nil)
	if err := cs.Reload(context.Background()); err != nil {
		t.Fatalf("reload: %v", err)
	}

	got := cs.Filter(domain.BookFilter{Category: "chapter"})
	if len(got) != 2 {
		t.Fatalf("want 2 chapter books, got %+v", got)
	}

	got = cs.Filter(domain.BookFilter{Search: "dahl"})
	if len(got) != 1 || got[0].Code != bookB.Code {
		t.Fatalf("author search failed: %+v", got)
	}

	got = cs.Filter(domain.BookFilter{PriceRange: domain.Price10kTo20k})
	if len(got) != 2 {
		t.Fatalf("want bookA and bookB in 10k-20k, got %+v", got)
	}
}
