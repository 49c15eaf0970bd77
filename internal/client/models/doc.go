// Package models defines the DTOs exchanged with the HisabKitab backend.
// They mirror the backend schema field for field; no client-side invariants
// exist beyond typing. Monetary fields use shopspring/decimal and are encoded
// as JSON numbers, matching what the backend emits and expects.
package models

import "github.com/shopspring/decimal"

func init() {
	// The backend serializes amounts as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}
