package blasym

// EVDJob states whether an eigen-decomposition computes eigenvectors in
// addition to eigenvalues.
type EVDJob int

const (
	// EVDNone computes eigenvalues only.
	EVDNone EVDJob = iota
	// EVDVectors also computes eigenvectors.
	EVDVectors
)

// ParseEVDJob interprets a symbolic eigen-decomposition job argument.
// Absent input, boolean false, and the token "n" select eigenvalues
// only; every other input selects eigenvector computation.
//
// Like ParseDiag this translator never fails: unrecognized tokens such
// as "yes" or "compute" count as a request for eigenvectors. The
// permissive branch is part of the contract.
func ParseEVDJob(v any) EVDJob {
	switch v {
	case nil, false, "n":
		return EVDNone
	}
	return EVDVectors
}

// LAPACK returns the character code LAPACK expects for its jobvl and
// jobvr arguments. No CBLAS mapping exists for this parameter kind.
func (j EVDJob) LAPACK() byte {
	switch j {
	case EVDNone:
		return 'N'
	case EVDVectors:
		return 'V'
	}
	panic("blasym: invalid EVDJob value")
}

// String returns a descriptive token for the job mode.
func (j EVDJob) String() string {
	switch j {
	case EVDNone:
		return "n"
	case EVDVectors:
		return "v"
	default:
		return "unknown"
	}
}
