// Package domain holds the core types of semvercheck.
package domain

// CandidateVersion is the untrusted version string supplied by the invoking process.
type CandidateVersion string

// String returns the candidate as supplied.
func (c CandidateVersion) String() string {
	return string(c)
}

// CandidateKey is the zerr metadata key carrying the offending candidate.
const CandidateKey = "candidate"
