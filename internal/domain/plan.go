package domain

import (
	"fmt"
	"strings"
)

// Month window defaults for a plan
const (
	DefaultMaxVisibleMonths     = 36
	DefaultInitialVisibleMonths = 14
)

// BenefitType is what a parent claims in a given month of the child's life
type BenefitType int

const (
	None BenefitType = iota
	Basis
	Plus
	Partnership
)

var benefitTypeNames = map[BenefitType]string{
	None:        "none",
	Basis:       "basis",
	Plus:        "plus",
	Partnership: "partnership",
}

func (t BenefitType) String() string {
	if name, ok := benefitTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("BenefitType(%d)", int(t))
}

// ParseBenefitType accepts the lower-case names as well as the German labels
// used on the official forms.
func ParseBenefitType(s string) (BenefitType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "-":
		return None, nil
	case "basis", "basiselterngeld":
		return Basis, nil
	case "plus", "elterngeldplus":
		return Plus, nil
	case "partnership", "partnerschaftsbonus", "bonus":
		return Partnership, nil
	default:
		return None, fmt.Errorf("unknown benefit type %q", s)
	}
}

// MarshalText implements encoding.TextMarshaler
func (t BenefitType) MarshalText() ([]byte, error) {
	name, ok := benefitTypeNames[t]
	if !ok {
		return nil, fmt.Errorf("invalid benefit type %d", int(t))
	}
	return []byte(name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (t *BenefitType) UnmarshalText(text []byte) error {
	parsed, err := ParseBenefitType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Parent identifies one of the two parents in a plan
type Parent int

const (
	ParentOne Parent = 1
	ParentTwo Parent = 2
)

func (p Parent) String() string {
	switch p {
	case ParentOne:
		return "parent one"
	case ParentTwo:
		return "parent two"
	default:
		return fmt.Sprintf("Parent(%d)", int(p))
	}
}

// MonthEntry holds both parents' allocations for one month of life
type MonthEntry struct {
	ParentOne BenefitType `yaml:"parent_one" json:"parentOne"`
	ParentTwo BenefitType `yaml:"parent_two" json:"parentTwo"`
}

// Allocation returns the allocation of the given parent
func (e MonthEntry) Allocation(p Parent) BenefitType {
	if p == ParentTwo {
		return e.ParentTwo
	}
	return e.ParentOne
}

// MonthPlan is the in-memory month-by-month allocation for one planning
// session. Entries start as None and change only through SetAllocation.
type MonthPlan struct {
	entries       []MonthEntry
	visibleMonths int
}

// NewMonthPlan creates a plan with maxMonths entries of which
// initialVisible are shown. Out of range values fall back to the defaults.
func NewMonthPlan(maxMonths, initialVisible int) *MonthPlan {
	if maxMonths <= 0 || maxMonths > DefaultMaxVisibleMonths {
		maxMonths = DefaultMaxVisibleMonths
	}
	if initialVisible <= 0 {
		initialVisible = DefaultInitialVisibleMonths
	}
	if initialVisible > maxMonths {
		initialVisible = maxMonths
	}
	return &MonthPlan{
		entries:       make([]MonthEntry, maxMonths),
		visibleMonths: initialVisible,
	}
}

// NewMonthPlanFromEntries builds a plan pre-filled with entries, replaying
// them through SetAllocation so the same rules apply as for interactive edits.
func NewMonthPlanFromEntries(entries []MonthEntry, maxMonths, visible int) (*MonthPlan, error) {
	if maxMonths <= 0 || maxMonths > DefaultMaxVisibleMonths {
		maxMonths = DefaultMaxVisibleMonths
	}
	if len(entries) > maxMonths {
		return nil, fmt.Errorf("plan has %d months, at most %d are allowed", len(entries), maxMonths)
	}
	plan := NewMonthPlan(maxMonths, visible)
	for i, e := range entries {
		for _, p := range []Parent{ParentOne, ParentTwo} {
			if t := e.Allocation(p); t != None {
				if err := plan.SetAllocation(i, p, t); err != nil {
					return nil, err
				}
			}
		}
	}
	return plan, nil
}

// Len returns the total number of months the plan can hold
func (mp *MonthPlan) Len() int { return len(mp.entries) }

// VisibleMonths returns how many leading months are currently shown
func (mp *MonthPlan) VisibleMonths() int { return mp.visibleMonths }

// Entry returns the allocations for the month at index
func (mp *MonthPlan) Entry(index int) MonthEntry {
	if index < 0 || index >= len(mp.entries) {
		return MonthEntry{}
	}
	return mp.entries[index]
}

// Entries returns a copy of all entries
func (mp *MonthPlan) Entries() []MonthEntry {
	return append([]MonthEntry(nil), mp.entries...)
}

// SetAllocation sets a parent's allocation for one month. Setting the type the
// month already has resets it to None, mirroring a toggle button.
func (mp *MonthPlan) SetAllocation(index int, parent Parent, t BenefitType) error {
	if index < 0 || index >= len(mp.entries) {
		return fmt.Errorf("month index %d out of range [0, %d)", index, len(mp.entries))
	}
	if _, ok := benefitTypeNames[t]; !ok {
		return fmt.Errorf("invalid benefit type %d", int(t))
	}

	slot := &mp.entries[index].ParentOne
	switch parent {
	case ParentOne:
	case ParentTwo:
		slot = &mp.entries[index].ParentTwo
	default:
		return fmt.Errorf("invalid parent %d", int(parent))
	}

	if *slot == t {
		*slot = None
		return nil
	}
	*slot = t
	return nil
}

// ShowMoreMonths grows the visible window by n months, capped at the plan length.
// It returns the new number of visible months.
func (mp *MonthPlan) ShowMoreMonths(n int) int {
	if n > 0 {
		mp.visibleMonths += n
	}
	if mp.visibleMonths > len(mp.entries) {
		mp.visibleMonths = len(mp.entries)
	}
	return mp.visibleMonths
}

// Reset clears all allocations
func (mp *MonthPlan) Reset() {
	for i := range mp.entries {
		mp.entries[i] = MonthEntry{}
	}
}
