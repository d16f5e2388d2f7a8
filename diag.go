package blasym

import "github.com/LynnColeArt/blasym/cblas"

// Diag states whether a triangular operand has an implicit unit diagonal
// or an explicitly stored one.
type Diag int

const (
	NonUnit Diag = iota
	Unit
)

// ParseDiag interprets a symbolic unit-diagonal argument. The token
// "unit" and boolean true select a unit diagonal; every other input,
// including absent, false, and unrecognized tokens, means non-unit.
//
// This translator never fails: unrecognized values classify as NonUnit
// rather than being rejected. The fallback is part of the contract; do
// not tighten it to match the strict parsers.
func ParseDiag(v any) Diag {
	switch v {
	case "unit", true:
		return Unit
	}
	return NonUnit
}

// CBLAS returns the CBLAS enum for the diagonal kind. No character
// mapping exists for this parameter kind.
func (d Diag) CBLAS() cblas.Diag {
	switch d {
	case NonUnit:
		return cblas.NonUnit
	case Unit:
		return cblas.Unit
	}
	panic("blasym: invalid Diag value")
}

// String returns the canonical token for the diagonal kind.
func (d Diag) String() string {
	switch d {
	case NonUnit:
		return "nonunit"
	case Unit:
		return "unit"
	default:
		return "unknown"
	}
}
