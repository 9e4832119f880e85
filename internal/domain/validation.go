package domain

// ViolationRule identifies which month-plan rule a violation comes from
type ViolationRule string

const (
	RuleSingleParentMaxBasis   ViolationRule = "single_parent_max_basis"
	RuleSingleParentMinBasis   ViolationRule = "single_parent_min_basis"
	RuleTotalBasisMonths       ViolationRule = "total_basis_months"
	RuleMinBasisPerParent      ViolationRule = "min_basis_per_parent"
	RuleSimultaneousBasisCount ViolationRule = "simultaneous_basis_count"
	RuleSimultaneousBasisLate  ViolationRule = "simultaneous_basis_late"
)

// Violation is a single broken rule with a message that can be shown as-is
type Violation struct {
	Rule    ViolationRule `yaml:"rule" json:"rule"`
	Message string        `yaml:"message" json:"message"`
}

// ValidationResult lists violations in the order the rules were evaluated.
// An empty result means the plan is valid.
type ValidationResult []Violation

// Valid reports whether no rule was violated
func (vr ValidationResult) Valid() bool { return len(vr) == 0 }

// Messages returns the human readable messages in order
func (vr ValidationResult) Messages() []string {
	msgs := make([]string, 0, len(vr))
	for _, v := range vr {
		msgs = append(msgs, v.Message)
	}
	return msgs
}

// Has reports whether the given rule was violated
func (vr ValidationResult) Has(rule ViolationRule) bool {
	for _, v := range vr {
		if v.Rule == rule {
			return true
		}
	}
	return false
}

// PlanRules are the limits on how Basis months may be split between parents
type PlanRules struct {
	MaxBasisMonths int `yaml:"max_basis_months" json:"maxBasisMonths"`
	MinBasisMonths int `yaml:"min_basis_months" json:"minBasisMonths"`

	// At most MaxSimultaneousBasis months where both parents draw Basis,
	// and only before month index SimultaneousBasisBefore.
	MaxSimultaneousBasis    int `yaml:"max_simultaneous_basis" json:"maxSimultaneousBasis"`
	SimultaneousBasisBefore int `yaml:"simultaneous_basis_before" json:"simultaneousBasisBefore"`
}

// DefaultPlanRules returns the statutory month limits
func DefaultPlanRules() PlanRules {
	return PlanRules{
		MaxBasisMonths:          14,
		MinBasisMonths:          2,
		MaxSimultaneousBasis:    1,
		SimultaneousBasisBefore: 12,
	}
}
