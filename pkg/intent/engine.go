package intent

import "storefront-be/pkg/catalog"

// Result is the outcome of resolving one utterance.
type Result struct {
	Rule  RuleName
	Reply string
}

// Engine evaluates an ordered rule list and stops at the first match.
// It holds no state besides the rules and is safe for concurrent use.
type Engine struct {
	rules []Rule
}

// NewEngine builds an engine over rules, evaluated in the given order.
// With no rules it uses DefaultRules.
func NewEngine(rules ...Rule) *Engine {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Engine{rules: cp}
}

// Rules returns the rule names in evaluation order.
func (e *Engine) Rules() []RuleName {
	names := make([]RuleName, 0, len(e.rules))
	for _, r := range e.rules {
		names = append(names, r.Name)
	}
	return names
}

// Resolve classifies the utterance against the catalog and builds the reply.
// If no rule matches, the fallback reply is returned.
func (e *Engine) Resolve(utterance string, products []catalog.Product) Result {
	q := NewQuery(utterance)
	for _, rule := range e.rules {
		if rule.Match(q) {
			return Result{Rule: rule.Name, Reply: rule.Respond(q, products)}
		}
	}
	fallback := FallbackRule()
	return Result{Rule: fallback.Name, Reply: fallback.Respond(q, products)}
}

// Classify returns only the name of the first matching rule.
func (e *Engine) Classify(utterance string) RuleName {
	q := NewQuery(utterance)
	for _, rule := range e.rules {
		if rule.Match(q) {
			return rule.Name
		}
	}
	return RuleFallback
}
