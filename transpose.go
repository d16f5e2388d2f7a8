package blasym

import "github.com/LynnColeArt/blasym/cblas"

// Transpose is the semantic transpose mode of a matrix operand.
type Transpose int

const (
	// NoTrans uses the operand as stored.
	NoTrans Transpose = iota
	// Trans uses the transpose of the operand.
	Trans
	// ConjTrans uses the complex-conjugate transpose of the operand.
	ConjTrans
)

// ParseTranspose interprets a symbolic transpose argument, which may be
// false or "no_transpose" (use the operand as-is), "transpose", or
// "complex_conjugate". Absent input (nil) and boolean false are synonyms
// for "no_transpose"; only literal false counts, no other value is
// coerced. Any other input is rejected with a ParamError.
func ParseTranspose(v any) (Transpose, error) {
	switch v := v.(type) {
	case nil:
		return NoTrans, nil
	case bool:
		if !v {
			return NoTrans, nil
		}
	case string:
		switch v {
		case "no_transpose":
			return NoTrans, nil
		case "transpose":
			return Trans, nil
		case "complex_conjugate":
			return ConjTrans, nil
		}
	}
	return NoTrans, newParamError("transpose", v, "false", "transpose", "complex_conjugate")
}

// CBLAS returns the CBLAS enum for the transpose mode.
func (t Transpose) CBLAS() cblas.Transpose {
	switch t {
	case NoTrans:
		return cblas.NoTrans
	case Trans:
		return cblas.Trans
	case ConjTrans:
		return cblas.ConjTrans
	}
	panic("blasym: invalid Transpose value")
}

// LAPACK returns the character code for the transpose mode. LAPACK uses
// a different coding than CBLAS for this parameter.
func (t Transpose) LAPACK() byte {
	switch t {
	case NoTrans:
		return 'N'
	case Trans:
		return 'T'
	case ConjTrans:
		return 'C'
	}
	panic("blasym: invalid Transpose value")
}

// String returns the canonical token for the transpose mode.
func (t Transpose) String() string {
	switch t {
	case NoTrans:
		return "no_transpose"
	case Trans:
		return "transpose"
	case ConjTrans:
		return "complex_conjugate"
	default:
		return "unknown"
	}
}
