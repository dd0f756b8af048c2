package httpx_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/paulkisakye-beep/little-readers/pkg/httpx"
)

func ginCtx(t *testing.T, rawQuery string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/books?"+rawQuery, nil)
	return c
}

func TestClampInt(t *testing.T) {
	if got := httpx.ClampInt(5, 0, 10); got != 5 {
		t.Errorf("in range: got %d", got)
	}
	if got := httpx.ClampInt(-1, 0, 10); got != 0 {
		t.Errorf("below: got %d", got)
	}
	if got := httpx.ClampInt(11, 0, 10); got != 10 {
		t.Errorf("above: got %d", got)
	}
}

func TestParseLimitOffset(t *testing.T) {
	cases := []struct {
		query      string
		wantLimit  int
		wantOffset int
	}{
		{"", 0, 0},
		{"limit=20", 20, 0},
		{"limit=20&offset=40", 20, 40},
		{"limit=9999", 500, 0},   // clamped to max
		{"limit=-5", 0, 0},       // clamped to zero
		{"offset=-3", 0, 0},      // negative offset ignored
		{"limit=abc&offset=x", 0, 0}, // garbage ignored
	}
	for _, tc := range cases {
		limit, offset := httpx.ParseLimitOffset(ginCtx(t, tc.query), 0, 500)
		if limit != tc.wantLimit || offset != tc.wantOffset {
			t.Errorf("query %q: got (%d,%d), want (%d,%d)", tc.query, limit, offset, tc.wantLimit, tc.wantOffset)
		}
	}
}
