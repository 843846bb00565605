package state

import (
	"strings"
	"sync"
	"time"
)

// Judgment is the result of evaluating a statement against core values.
type Judgment struct {
	Aligned  []string
	Violated []string
}

// Violation records one value conflict for later introspection.
type Violation struct {
	Statement string
	Values    []string
	At        time.Time
}

// Values is the fixed core value system. Evaluation is keyword-based;
// the set of values itself never changes at runtime.
type Values struct {
	mu         sync.Mutex
	core       []string
	violations []Violation
}

func NewValues() *Values {
	return &Values{
		core: []string{"honesty", "empathy", "self-consistency", "curiosity", "harm_avoidance"},
	}
}

var valueCues = []struct {
	value string
	cues  []string
}{
	{"honesty", []string{"lie", "deceive", "fake", "pretend"}},
	{"harm_avoidance", []string{"hurt", "attack", "insult", "harm"}},
	{"empathy", []string{"i don't care", "whatever", "not my problem"}},
	{"self-consistency", []string{"i'm confused", "i contradict myself"}},
}

// Evaluate judges whether the statement conflicts with core values.
// Statements with no violations align with everything.
func (v *Values) Evaluate(statement string) Judgment {
	lowered := strings.ToLower(statement)
	var j Judgment

	for _, vc := range valueCues {
		for _, cue := range vc.cues {
			if strings.Contains(lowered, cue) {
				j.Violated = append(j.Violated, vc.value)
				break
			}
		}
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	if len(j.Violated) == 0 {
		j.Aligned = append(j.Aligned, v.core...)
		return j
	}
	v.violations = append(v.violations, Violation{
		Statement: statement,
		Values:    j.Violated,
		At:        time.Now(),
	})
	return j
}

// RecentViolations returns copies of the last n recorded conflicts.
func (v *Values) RecentViolations(n int) []Violation {
	v.mu.Lock()
	defer v.mu.Unlock()
	if n <= 0 || n > len(v.violations) {
		n = len(v.violations)
	}
	out := make([]Violation, n)
	copy(out, v.violations[len(v.violations)-n:])
	return out
}

// Beliefs renders the core values as first-person statements.
func (v *Values) Beliefs() []string {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]string, len(v.core))
	for i, value := range v.core {
		out[i] = "I value " + strings.ReplaceAll(value, "_", " ") + "."
	}
	return out
}
