// Package cblas defines the enumerated constants of the CBLAS calling
// convention. The magnitudes are fixed by the CBLAS standard and shared
// by every conforming implementation; they are declared here so that
// translated parameters carry a distinct type per parameter kind and
// cannot be passed where a different kind, or a LAPACK character code,
// is expected.
//
// LAPACKE declares no equivalent of most of these enums (it takes
// character arguments instead), with one exception: its matrix_layout
// argument is a plain int using the same 101/102 magnitudes as Order.
package cblas

// Order selects row-major or column-major element layout.
type Order int

const (
	RowMajor Order = 101
	ColMajor Order = 102
)

// Transpose selects how a matrix operand enters the computation.
type Transpose int

const (
	NoTrans   Transpose = 111
	Trans     Transpose = 112
	ConjTrans Transpose = 113
)

// Uplo selects which triangular half of a matrix is referenced.
type Uplo int

const (
	Upper Uplo = 121
	Lower Uplo = 122
)

// Diag states whether a triangular matrix has an implicit unit diagonal.
type Diag int

const (
	NonUnit Diag = 131
	Unit    Diag = 132
)

// Side selects whether a triangular operand multiplies from the left or
// the right.
type Side int

const (
	Left  Side = 141
	Right Side = 142
)
