package chart

import (
	"bytes"
	"testing"

	"github.com/Daniel-M-Sena/gerenciador-financeiro/internal/core"
)

func TestRenderProducesPNG(t *testing.T) {
	buckets := []core.Bucket{
		{Year: 2024, Month: 1, Label: "Jan/24", Income: core.Money{Cents: 100000}, Expense: core.Money{Cents: 30000}},
		{Year: 2024, Month: 2, Label: "Fev/24", Income: core.Money{Cents: 50000}},
	}
	var buf bytes.Buffer
	if err := Render(&buf, buckets); err != nil {
		t.Fatalf("render: %v", err)
	}
	// PNG magic bytes.
	if buf.Len() < 8 || !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG\r\n\x1a\n")) {
		t.Fatalf("expected PNG output, got %d bytes", buf.Len())
	}
}

func TestRenderNoData(t *testing.T) {
	var buf bytes.Buffer
	if err := Render(&buf, nil); err != ErrNoData {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("no bytes should be written without data")
	}
}

func TestMaxBucketValue(t *testing.T) {
	buckets := []core.Bucket{
		{Income: core.Money{Cents: 100}, Expense: core.Money{Cents: 900}},
		{Income: core.Money{Cents: 500}, Expense: core.Money{Cents: 200}},
	}
	if got := maxBucketValue(buckets); got.Cents != 900 {
		t.Fatalf("expected 900, got %d", got.Cents)
	}
	if got := maxBucketValue(nil); got.Cents != 0 {
		t.Fatalf("expected 0 for empty input, got %d", got.Cents)
	}
}
