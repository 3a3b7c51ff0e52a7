// SPDX-License-Identifier: Apache-2.0

package models

// Parity labels recognised by the API. The label is always derived on the
// server from Value; client-supplied parity is ignored.
const (
	ParityEven = "Even"
	ParityOdd  = "Odd"
)

// Number is a persisted parity record: a non-negative integer together with
// its server-derived Even/Odd classification.
type Number struct {
	// ID is the server-assigned identifier of the record.
	ID int64 `json:"id"`

	// Value is the classified integer. The service rejects negative values.
	Value int64 `json:"value"`

	// Parity is the derived classification, either "Even" or "Odd".
	Parity string `json:"parity"`
}

// DeriveParity recomputes Parity from Value, overwriting whatever the
// client sent.
func (n *Number) DeriveParity() {
	if n.Value%2 == 0 {
		n.Parity = ParityEven
	} else {
		n.Parity = ParityOdd
	}
}

// TableName returns the database table the record is persisted in.
func (n Number) TableName() string {
	return "parity_numbers"
}
