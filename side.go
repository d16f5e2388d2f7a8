package blasym

import "github.com/LynnColeArt/blasym/cblas"

// Side selects whether a triangular or auxiliary operand is applied from
// the left or the right of a product.
type Side int

const (
	Left Side = iota
	Right
)

// ParseSide interprets a symbolic side argument, which must be exactly
// "left" or "right". Unlike ParseTranspose there is no boolean synonym:
// anything but the two tokens is rejected with a ParamError.
func ParseSide(v any) (Side, error) {
	switch v {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return Left, newParamError("side", v, "left", "right")
}

// CBLAS returns the CBLAS enum for the side. No character mapping exists
// for this parameter kind.
func (s Side) CBLAS() cblas.Side {
	switch s {
	case Left:
		return cblas.Left
	case Right:
		return cblas.Right
	}
	panic("blasym: invalid Side value")
}

// String returns the canonical token for the side.
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}
