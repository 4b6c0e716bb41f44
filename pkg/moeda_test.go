package pkg

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestFormatBRL(t *testing.T) {
	got := FormatBRL(decimal.RequireFromString("1234.5"))
	if !strings.HasPrefix(got, "R$ ") || !strings.HasSuffix(got, ",50") || !strings.Contains(got, "1.234") {
		t.Fatalf("unexpected format %q", got)
	}
	if got := FormatBRLFloat(0); !strings.HasSuffix(got, "0,00") {
		t.Fatalf("unexpected zero format %q", got)
	}
}
