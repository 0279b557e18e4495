package services

import (
	"math/rand"
	"testing"
)

func TestGenerateInvoiceNumberRange(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 1000; i++ {
		n := GenerateInvoiceNumber(rng)
		if n < 1000 || n > 9999 {
			t.Fatalf("GenerateInvoiceNumber() = %d, want 4-digit number", n)
		}
	}
}

func TestGenerateInvoiceNumberDeterministicWithSeed(t *testing.T) {
	a := GenerateInvoiceNumber(rand.New(rand.NewSource(42)))
	b := GenerateInvoiceNumber(rand.New(rand.NewSource(42)))
	if a != b {
		t.Errorf("same seed produced %d and %d", a, b)
	}
}
