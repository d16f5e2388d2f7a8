package blasym

import "github.com/LynnColeArt/blasym/cblas"

// Order is the storage order of a 2-D array's elements in memory.
type Order int

const (
	RowMajor Order = iota
	ColMajor
)

// ParseOrder interprets a symbolic storage-order argument. Row-major
// storage is spelled "row" or "row_major"; column-major storage is
// spelled "col", "col_major", "column", or "column_major". Any other
// token is rejected with a ParamError naming the canonical forms.
func ParseOrder(v any) (Order, error) {
	switch v {
	case "row", "row_major":
		return RowMajor, nil
	case "col", "col_major", "column", "column_major":
		return ColMajor, nil
	}
	return RowMajor, newParamError("order", v, "row", "col")
}

// CBLAS returns the enum for the storage order. This is the one
// parameter kind that needs no separate LAPACK mapping: LAPACKE's
// matrix_layout argument is an int with the same 101/102 magnitudes, so
// the returned value serves both conventions.
func (o Order) CBLAS() cblas.Order {
	switch o {
	case RowMajor:
		return cblas.RowMajor
	case ColMajor:
		return cblas.ColMajor
	}
	panic("blasym: invalid Order value")
}

// String returns the canonical token for the storage order.
func (o Order) String() string {
	switch o {
	case RowMajor:
		return "row"
	case ColMajor:
		return "col"
	default:
		return "unknown"
	}
}
