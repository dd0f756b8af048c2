package validate_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulkisakye-beep/little-readers/pkg/validate"
)

const validOrderJSON = `{"customerName":"Amina K","customerPhone":"+256712345678","deliveryArea":"Kampala","deliveryNotes":"","books":[{"code":"BK-001","title":"The Gruffalo","author":"Julia Donaldson","category":"picture","ageGroup":"3-5","price":15000,"image":"","available":true,"status":"available"}],"promoCode":""}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write temp: %v", err)
	}
	return path
}

func TestValidateOrderFromJSON_UnknownFieldRejected(t *testing.T) {
	v := validate.NewOrderValidator()

	raw := strings.Replace(validOrderJSON, `"promoCode":""`, `"promoCode":"","extra":1`, 1)
	if _, err := validate.ValidateOrderFromJSON(context.Background(), v, []byte(raw)); err == nil {
		t.Fatalf("unknown field must be rejected")
	}
}

func TestValidateOrderFromJSON_TrailingDataRejected(t *testing.T) {
	v := validate.NewOrderValidator()

	if _, err := validate.ValidateOrderFromJSON(context.Background(), v, []byte(validOrderJSON+`{"x":1}`)); err == nil {
		t.Fatalf("trailing data must be rejected")
	}
}

func TestValidateFile_JSON(t *testing.T) {
	v := validate.NewOrderValidator()
	path := writeTemp(t, "order.json", validOrderJSON)

	var out bytes.Buffer
	summary, err := validate.ValidateFile(context.Background(), v, path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("validate file: %v", err)
	}
	if summary != "1 valid / 0 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if !strings.Contains(out.String(), `"customerName":"Amina K"`) {
		t.Fatalf("canonical output missing: %s", out.String())
	}
}

func TestValidateFile_JSONL_SkipsInvalidLines(t *testing.T) {
	v := validate.NewOrderValidator()
	content := validOrderJSON + "\n" +
		"\n" + // blank line skipped
		`{"customerPhone":"bad"}` + "\n" +
		validOrderJSON + "\n"
	path := writeTemp(t, "orders.jsonl", content)

	var out bytes.Buffer
	summary, err := validate.ValidateFile(context.Background(), v, path, validate.FormatAuto, &out)
	if err != nil {
		t.Fatalf("validate file: %v", err)
	}
	if summary != "2 valid / 1 invalid" {
		t.Fatalf("unexpected summary: %q", summary)
	}
	if lines := strings.Count(out.String(), "\n"); lines != 2 {
		t.Fatalf("want 2 output lines, got %d", lines)
	}
}

func TestValidateFile_MissingFile(t *testing.T) {
	v := validate.NewOrderValidator()
	if _, err := validate.ValidateFile(context.Background(), v, "/does/not/exist.json", validate.FormatAuto, &bytes.Buffer{}); err == nil {
		t.Fatalf("want error for missing file")
	}
}
