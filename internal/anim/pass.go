package anim

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vovakirdan/tui-scenes/internal/scene"
)

// Failure reports an object whose update was skipped for one tick.
type Failure struct {
	Handle scene.Handle
	Rule   string
	Err    error
}

// Error implements error.
func (f Failure) Error() string {
	return fmt.Sprintf("anim: %s on object %d: %v", f.Rule, f.Handle, f.Err)
}

// Unwrap returns the underlying error.
func (f Failure) Unwrap() error {
	return f.Err
}

// Pass is one unit of per-tick work over the registry.
// Failures are reported through fail and never stop other objects.
type Pass interface {
	Run(reg *scene.Registry, c Clock, fail func(Failure))
}

// Binding applies a chain of rules to a single object.
type Binding struct {
	Handle scene.Handle
	Rules  []Rule
}

// Bind attaches rules to an object. They run in order every tick.
func Bind(h scene.Handle, rules ...Rule) Binding {
	return Binding{Handle: h, Rules: rules}
}

// Run implements Pass. If any rule fails, or the result does not validate,
// the object keeps its previous attributes for this tick.
func (b Binding) Run(reg *scene.Registry, c Clock, fail func(Failure)) {
	a, err := reg.Get(b.Handle)
	if err != nil {
		fail(Failure{Handle: b.Handle, Rule: "get", Err: err})
		return
	}

	for _, r := range b.Rules {
		if err := r.Apply(&a, c); err != nil {
			fail(Failure{Handle: b.Handle, Rule: RuleName(r), Err: err})
			return
		}
	}

	if err := reg.Set(b.Handle, a); err != nil {
		fail(Failure{Handle: b.Handle, Rule: "set", Err: err})
	}
}

// Sample applies Rule to N objects drawn at random from Handles each tick.
type Sample struct {
	Handles []scene.Handle
	N       int
	Rule    Rule
	Rand    *rand.Rand
}

// Run implements Pass.
func (s Sample) Run(reg *scene.Registry, c Clock, fail func(Failure)) {
	n := s.N
	if n > len(s.Handles) {
		n = len(s.Handles)
	}
	if n <= 0 {
		return
	}

	for _, i := range s.Rand.Perm(len(s.Handles))[:n] {
		Bind(s.Handles[i], s.Rule).Run(reg, c, fail)
	}
}

// UpdateAll runs every pass once for the given clock, in order.
// It returns the number of failures reported.
func UpdateAll(reg *scene.Registry, c Clock, passes []Pass, fail func(Failure)) int {
	failures := 0
	report := func(f Failure) {
		failures++
		if fail != nil {
			fail(f)
		}
	}
	for _, p := range passes {
		p.Run(reg, c, report)
	}
	return failures
}

// RuleName returns a short name for a rule, used in logs.
func RuleName(r Rule) string {
	name := fmt.Sprintf("%T", r)
	name = strings.TrimPrefix(name, "*")
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
