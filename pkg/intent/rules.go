package intent

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"storefront-be/pkg/catalog"
)

// RuleName identifies an intent rule independently of its reply text.
type RuleName string

const (
	RuleRecovery     RuleName = "recovery"
	RulePriceCeiling RuleName = "price_ceiling"
	RulePurity       RuleName = "purity"
	RuleGreeting     RuleName = "greeting"
	RuleFallback     RuleName = "fallback"
)

// Fixed replies.
const (
	GreetingReply    = "Greetings. I can help you find peptides based on category or price."
	FallbackReply    = "I'm not sure, please contact support."
	NoneInRangeReply = "No products found in that range."
)

const (
	recoveryTemplate = "For recovery, we recommend: %s."
	ceilingTemplate  = "Found %d items under $%s: %s"
	purityTemplate   = "Our purest items (>99%%): %s"
	purityThreshold  = 99.0
	listSeparator    = ", "
)

var digitRun = regexp.MustCompile(`\d+`)

// Query is a normalized utterance: trimmed and lower-cased.
type Query struct {
	Raw  string
	Text string
}

// NewQuery normalizes an utterance.
func NewQuery(utterance string) Query {
	return Query{
		Raw:  utterance,
		Text: strings.ToLower(strings.TrimSpace(utterance)),
	}
}

// Contains reports whether the normalized text contains any of the substrings.
// Matching is substring based, so "hidden" contains "hi".
func (q Query) Contains(substrs ...string) bool {
	for _, sub := range substrs {
		if strings.Contains(q.Text, sub) {
			return true
		}
	}
	return false
}

// Ceiling extracts the first run of decimal digits as an unsigned number.
// Very long runs parse to a large float (or +Inf) instead of failing.
func (q Query) Ceiling() (value float64, digits string, ok bool) {
	digits = digitRun.FindString(q.Text)
	if digits == "" {
		return 0, "", false
	}
	// ParseFloat on a digits-only string can only fail with ErrRange, and then
	// still returns +Inf, which is the value we want.
	value, _ = strconv.ParseFloat(digits, 64)

	digits = strings.TrimLeft(digits, "0")
	if digits == "" {
		digits = "0"
	}
	return value, digits, true
}

// Rule is one (predicate, response) pair of the ordered rule list.
type Rule struct {
	Name    RuleName
	Match   func(q Query) bool
	Respond func(q Query, products []catalog.Product) string
}

// DefaultRules returns the storefront assistant's rules in priority order.
// The last rule always matches.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name: RuleRecovery,
			Match: func(q Query) bool {
				return q.Contains("recovery")
			},
			Respond: func(_ Query, products []catalog.Product) string {
				items := catalog.ByCategory(products, catalog.CategoryRecovery)
				return fmt.Sprintf(recoveryTemplate, joinNames(items))
			},
		},
		{
			Name: RulePriceCeiling,
			Match: func(q Query) bool {
				if !q.Contains("under") {
					return false
				}
				_, _, ok := q.Ceiling()
				return ok
			},
			Respond: func(q Query, products []catalog.Product) string {
				ceiling, display, _ := q.Ceiling()
				cheap := catalog.PricedBelow(products, ceiling)
				if len(cheap) == 0 {
					return NoneInRangeReply
				}
				return fmt.Sprintf(ceilingTemplate, len(cheap), display, joinNames(cheap))
			},
		},
		{
			Name: RulePurity,
			Match: func(q Query) bool {
				return q.Contains("purity")
			},
			Respond: func(_ Query, products []catalog.Product) string {
				return fmt.Sprintf(purityTemplate, joinNames(catalog.PurerThan(products, purityThreshold)))
			},
		},
		{
			Name: RuleGreeting,
			Match: func(q Query) bool {
				return q.Contains("hello", "hi")
			},
			Respond: func(Query, []catalog.Product) string {
				return GreetingReply
			},
		},
		FallbackRule(),
	}
}

// FallbackRule matches everything and asks the visitor to contact support.
func FallbackRule() Rule {
	return Rule{
		Name:  RuleFallback,
		Match: func(Query) bool { return true },
		Respond: func(Query, []catalog.Product) string {
			return FallbackReply
		},
	}
}

func joinNames(products []catalog.Product) string {
	return strings.Join(catalog.Names(products), listSeparator)
}
