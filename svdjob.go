package blasym

// SVDJob governs how much of a singular-value-decomposition factor is
// materialized, and where.
type SVDJob int

const (
	// SVDAll computes and returns the full factor.
	SVDAll SVDJob = iota
	// SVDReturn computes and returns only the reduced factor.
	SVDReturn
	// SVDOverwrite computes the factor into the input's storage.
	SVDOverwrite
	// SVDNone skips computing the factor.
	SVDNone
)

// ParseSVDJob interprets a symbolic SVD job argument. Each mode has a
// long and a short spelling: "all"/"a", "return"/"s", "overwrite"/"o",
// "none"/"n". No other normalization is applied, so "ALL" or "All" are
// rejected with a ParamError enumerating all eight spellings.
func ParseSVDJob(v any) (SVDJob, error) {
	switch v {
	case "all", "a":
		return SVDAll, nil
	case "return", "s":
		return SVDReturn, nil
	case "overwrite", "o":
		return SVDOverwrite, nil
	case "none", "n":
		return SVDNone, nil
	}
	return SVDAll, newParamError("svd job", v,
		"all", "a", "return", "s", "overwrite", "o", "none", "n")
}

// LAPACK returns the character code LAPACK expects for its jobu and
// jobvt arguments. No CBLAS mapping exists for this parameter kind.
func (j SVDJob) LAPACK() byte {
	switch j {
	case SVDAll:
		return 'A'
	case SVDReturn:
		return 'S'
	case SVDOverwrite:
		return 'O'
	case SVDNone:
		return 'N'
	}
	panic("blasym: invalid SVDJob value")
}

// String returns the canonical long token for the job mode.
func (j SVDJob) String() string {
	switch j {
	case SVDAll:
		return "all"
	case SVDReturn:
		return "return"
	case SVDOverwrite:
		return "overwrite"
	case SVDNone:
		return "none"
	default:
		return "unknown"
	}
}
