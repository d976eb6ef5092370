package request

import (
	"errors"
	"testing"
)

func TestBudgetRequest_ResolveDimensions(t *testing.T) {
	r := BudgetRequest{Dimensions: DimensionsRequest{Comprimento: 8, Largura: 4, ProfMin: 1, ProfMax: 2}}
	d, err := r.ResolveDimensions()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Comprimento != 8 || d.Largura != 4 || d.ProfMin != 1 || d.ProfMax != 2 {
		t.Fatalf("unexpected dimensions: %+v", d)
	}

	r2 := BudgetRequest{Dimensions: DimensionsRequest{Comprimento: 8, Largura: 0, ProfMin: 1, ProfMax: 2}}
	if _, err := r2.ResolveDimensions(); !errors.Is(err, ErrInvalidDimensions) {
		t.Fatalf("expected ErrInvalidDimensions, got %v", err)
	}

	r3 := BudgetRequest{Dimensions: DimensionsRequest{Comprimento: 8, Largura: 4, ProfMin: 2, ProfMax: 1.5}}
	if _, err := r3.ResolveDimensions(); !errors.Is(err, ErrDepthOrder) {
		t.Fatalf("expected ErrDepthOrder, got %v", err)
	}
}

func TestBudgetRequest_ResolveAnswers(t *testing.T) {
	r := BudgetRequest{}
	a := r.ResolveAnswers()
	if a == nil {
		t.Fatal("expected non-nil answers for empty payload")
	}

	r2 := BudgetRequest{Answers: map[string]any{"localidade": "Viseu"}}
	if got := r2.ResolveAnswers().String("localidade", ""); got != "Viseu" {
		t.Fatalf("expected Viseu, got %q", got)
	}
}
