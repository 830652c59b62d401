package membership

// Stage names the step of the procedure that settled a decision.
type Stage string

const (
	// StageNotCentralising: f fails to commute with some generator.
	StageNotCentralising Stage = "not-centralising"
	// StageQuotient: the lift of f is not generated by the lifted
	// generators, and lifting is a homomorphism.
	StageQuotient Stage = "quotient"
	// StageQuotientWitness: the quotient factorisation already multiplies out to f.
	StageQuotientWitness Stage = "quotient-witness"
	// StageCorrective: the quotient witness was corrected by stabiliser elements.
	StageCorrective Stage = "corrective"
	// StageFallback: the oracle was asked about f and the generators directly.
	StageFallback Stage = "fallback"
)

// Stages lists every stage in procedure order.
var Stages = []Stage{StageNotCentralising, StageQuotient, StageQuotientWitness, StageCorrective, StageFallback}

func (s Stage) String() string { return string(s) }

// Result is the outcome of Decide.
type Result struct {
	// Member reports whether f is in the semigroup generated by the generators.
	Member bool `json:"member"`
	// Stage is the step that settled the answer.
	Stage Stage `json:"stage"`
	// Factorisation holds generator indices whose left-to-right product is
	// f. It is nil unless Member.
	Factorisation []int `json:"factorisation,omitempty"`
	// Degree is the size of the domain.
	Degree int `json:"degree"`
	// Blocks is the number of orbit-quotient blocks; 0 when the procedure
	// stopped before computing them.
	Blocks int `json:"blocks"`
}
