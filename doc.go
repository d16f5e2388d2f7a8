// Package blasym translates symbolic dense linear-algebra kernel
// parameters into the codes the two native kernel calling conventions
// expect: typed integer enums for CBLAS-style interfaces and single
// character codes for LAPACK-style interfaces.
//
// Callers describe kernel behavior with a small closed vocabulary of
// tokens ("transpose", "upper", "row_major", ...), possibly supplied as
// loosely typed values by a dynamic binding layer. Each parameter kind
// has one boundary parser that validates the loose input into a variant
// type, and total mapping methods from the variant into each code space:
//
//	t, err := blasym.ParseTranspose("complex_conjugate")
//	if err != nil {
//		return err
//	}
//	enum := t.CBLAS()  // cblas.ConjTrans (113)
//	ch := t.LAPACK()   // 'C'
//
// A wrong parameter code silently corrupts numerical results instead of
// crashing, so the vocabulary checks here are strict: parsers reject
// anything outside the accepted spellings with a ParamError naming the
// valid tokens. Two translators are intentionally total instead:
// ParseDiag treats everything but "unit"/true as non-unit, and
// ParseEVDJob treats everything but absent/false/"n" as a request to
// compute eigenvectors. That asymmetry mirrors the conventions' own
// semantics and must not be tightened.
//
// All functions are pure and safe for unsynchronized concurrent use.
package blasym
