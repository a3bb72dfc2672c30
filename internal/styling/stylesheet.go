package styling

import (
	"sort"
	"strings"

	gocache "github.com/patrickmn/go-cache"

	"github.com/alexisbeaulieu97/playground/internal/tokens"
	"github.com/alexisbeaulieu97/playground/internal/ui/components"
)

// Stylesheet collects the rules produced by class and theme compiles, keyed
// by selector. It is safe for concurrent use.
type Stylesheet struct {
	rules *gocache.Cache
}

// NewStylesheet returns an empty stylesheet. Rules never expire.
func NewStylesheet() *Stylesheet {
	return &Stylesheet{rules: gocache.New(gocache.NoExpiration, 0)}
}

// Compile is Compile plus rule registration. Generated class rules are
// content-addressed, so an existing rule is reused. Theme rules replace the
// previous override for their selector.
func (s *Stylesheet) Compile(base components.Element, tok tokens.StyleTokens, approach Approach, demo, slot string) StyledElement {
	el := Compile(base, tok, approach, demo, slot)
	if s == nil || !el.Styled() {
		return el
	}

	for i, rule := range el.rules {
		el.rules[i] = s.register(rule, approach.Kind() == KindTheme)
	}
	return el
}

func (s *Stylesheet) register(rule Rule, replace bool) Rule {
	if replace {
		s.rules.Set(rule.Selector, rule, gocache.NoExpiration)
		return rule
	}
	if err := s.rules.Add(rule.Selector, rule, gocache.NoExpiration); err != nil {
		if existing, ok := s.Lookup(rule.Selector); ok {
			return existing
		}
	}
	return rule
}

// Lookup returns the rule registered for selector.
func (s *Stylesheet) Lookup(selector string) (Rule, bool) {
	v, ok := s.rules.Get(selector)
	if !ok {
		return Rule{}, false
	}
	rule, ok := v.(Rule)
	return rule, ok
}

// Len returns the number of registered rules.
func (s *Stylesheet) Len() int {
	return s.rules.ItemCount()
}

// Rules returns every registered rule sorted by selector.
func (s *Stylesheet) Rules() []Rule {
	items := s.rules.Items()
	out := make([]Rule, 0, len(items))
	for _, item := range items {
		if rule, ok := item.Object.(Rule); ok {
			out = append(out, rule)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Selector < out[j].Selector })
	return out
}

// CSS renders the whole stylesheet.
func (s *Stylesheet) CSS() string {
	rules := s.Rules()
	blocks := make([]string, len(rules))
	for i, r := range rules {
		blocks[i] = r.CSS()
	}
	return strings.Join(blocks, "\n")
}

// Reset drops every rule.
func (s *Stylesheet) Reset() {
	s.rules.Flush()
}
