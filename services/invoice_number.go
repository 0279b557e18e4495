package services

import "math/rand"

// GenerateInvoiceNumber returns a random 4-digit display number in the
// range 1000-9999. The random source is injected so the caller owns the
// non-determinism; everything downstream of the number stays testable.
// The number is assigned once when an invoice draft is created and is
// stable for the life of the draft.
func GenerateInvoiceNumber(rng *rand.Rand) int {
	return 1000 + rng.Intn(9000)
}
