package rule

import (
	"sort"
	"sync"

	"github.com/stevenschling13/Premiere-Mortgage-Assistant-sub000/document"
)

// Matcher decides whether a rule condition accepts a trigger context
type Matcher interface {
	Match(condition, ctx document.Document) bool
}

// MatcherFunc adapts a function to Matcher
type MatcherFunc func(condition, ctx document.Document) bool

func (f MatcherFunc) Match(condition, ctx document.Document) bool {
	return f(condition, ctx)
}

/* FieldEquals matches when the condition does not constrain the field, or when
 * ctx[contextKey] equals the first condition key present.
 * Comparison is by canonical string form, see document.Equal.
 */
func FieldEquals(contextKey string, conditionKeys ...string) Matcher {
	if len(conditionKeys) == 0 {
		conditionKeys = []string{contextKey}
	}
	return MatcherFunc(func(condition, ctx document.Document) bool {
		for _, key := range conditionKeys {
			if !condition.Has(key) {
				continue
			}
			expected, _ := condition.Get(key)
			actual, ok := ctx.Get(contextKey)
			return ok && document.Equal(expected, actual)
		}
		return true
	})
}

// MatcherRegistry holds one Matcher per trigger type
type MatcherRegistry struct {
	mu       sync.RWMutex
	matchers map[TriggerType]Matcher
}

func NewMatcherRegistry() *MatcherRegistry {
	return &MatcherRegistry{
		matchers: make(map[TriggerType]Matcher),
	}
}

// DefaultMatchers registers the built-in trigger types
func DefaultMatchers() *MatcherRegistry {
	r := NewMatcherRegistry()
	r.Register(StatusChange, FieldEquals("status", "status", "expectedStatus"))
	r.Register(EntityCreated, FieldEquals("entity"))
	return r
}

// Register adds or replaces the matcher for a trigger type
func (r *MatcherRegistry) Register(t TriggerType, m Matcher) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.matchers[t] = m
}

func (r *MatcherRegistry) Lookup(t TriggerType) (Matcher, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.matchers[t]
	return m, ok
}

// Types lists the registered trigger types, sorted
func (r *MatcherRegistry) Types() []TriggerType {
	r.mu.RLock()
	defer r.mu.RUnlock()

	types := make([]TriggerType, 0, len(r.matchers))
	for t := range r.matchers {
		types = append(types, t)
	}
	sort.Slice(types, func(i, j int) bool { return types[i] < types[j] })
	return types
}
