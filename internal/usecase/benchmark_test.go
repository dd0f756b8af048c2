package usecase_test

import (
	"fmt"
	"testing"

	"github.com/paulkisakye-beep/little-readers/internal/domain"
	"github.com/paulkisakye-beep/little-readers/internal/usecase"
)

func benchCatalog(n int) []domain.Book {
	out := make([]domain.Book, n)
	for i := range out {
		out[i] = domain.Book{
			Code:      fmt.Sprintf("BK-%04d", i),
			Title:     fmt.Sprintf("Title %d", i),
			Author:    fmt.Sprintf("Author %d", i%20),
			Category:  []string{"picture", "chapter", "board"}[i%3],
			AgeGroup:  []string{"0-2", "3-5", "6-9", "10+"}[i%4],
			Price:     int64(5000 + (i%30)*1000),
			Available: true,
			Status:    domain.StatusAvailable,
		}
	}
	return out
}

func BenchmarkComputeTotal(b *testing.B) {
	items := benchCatalog(40)
	promo := &domain.Promo{Code: "READ10", Discount: 0.1}
	quote := &domain.DeliveryQuote{Area: "Kampala", Fee: 10000}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = usecase.ComputeTotal(items, promo, quote)
	}
}

func BenchmarkFilterApply(b *testing.B) {
	catalog := benchCatalog(500)
	f := domain.BookFilter{Category: "chapter", Search: "author 7", PriceRange: domain.Price10kTo20k}

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = f.Apply(catalog)
	}
}
