package blasym

import "github.com/LynnColeArt/blasym/cblas"

// Uplo selects which triangular half of a matrix is referenced.
type Uplo int

const (
	Upper Uplo = iota
	Lower
)

// ParseUplo interprets a symbolic triangular-region argument, which must
// be exactly "upper" or "lower". Anything else is rejected with a
// ParamError.
func ParseUplo(v any) (Uplo, error) {
	switch v {
	case "upper":
		return Upper, nil
	case "lower":
		return Lower, nil
	}
	return Upper, newParamError("uplo", v, "upper", "lower")
}

// CBLAS returns the CBLAS enum for the triangular region.
func (u Uplo) CBLAS() cblas.Uplo {
	switch u {
	case Upper:
		return cblas.Upper
	case Lower:
		return cblas.Lower
	}
	panic("blasym: invalid Uplo value")
}

// LAPACK returns the character code for the triangular region.
func (u Uplo) LAPACK() byte {
	switch u {
	case Upper:
		return 'U'
	case Lower:
		return 'L'
	}
	panic("blasym: invalid Uplo value")
}

// String returns the canonical token for the triangular region.
func (u Uplo) String() string {
	switch u {
	case Upper:
		return "upper"
	case Lower:
		return "lower"
	default:
		return "unknown"
	}
}
