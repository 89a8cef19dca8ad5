// Package funfact picks the explanatory sentence attached to a classification.
//
// Rules are evaluated in order and the first one that applies wins:
// armstrong, perfect, prime, parity (when enabled), trivia lookup (when
// configured) and finally the parity template.
package funfact

import (
	"context"
	"errors"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"numbersense/classify-api/common/models"
)

// Fallback texts used when the trivia service cannot provide a fact.
const (
	CouldNotFetchText = "Could not fetch fun fact."
	NoFactText        = "No fun fact available."
)

// Facts are the predicate results the resolver explains.
type Facts struct {
	Number     int64
	Properties []string
}

func (f Facts) has(tag string) bool {
	return slices.Contains(f.Properties, tag)
}

// Fact is the resolved fun fact. Degraded is set when an external lookup was
// attempted and failed.
type Fact struct {
	Text     string
	Source   models.FactSource
	Degraded bool
}

// LookupObserver receives the outcome of every trivia lookup.
type LookupObserver interface {
	ObserveLookup(result string, elapsed time.Duration)
}

// Config controls which rules are active.
type Config struct {
	// ParityTemplate answers non-special numbers locally instead of calling
	// the trivia service.
	ParityTemplate bool
	// Lookup is the external trivia collaborator. Nil disables the lookup.
	Lookup Lookup
	// Observer is optional.
	Observer LookupObserver
}

// Rule is one entry of the resolver's decision table.
type Rule struct {
	Name    string
	Applies func(Facts) bool
	Explain func(ctx context.Context, f Facts) Fact
}

// Resolver evaluates an ordered list of rules.
type Resolver struct {
	rules []Rule
}

// NewResolver builds the rule list for cfg.
func NewResolver(cfg Config) *Resolver {
	rules := []Rule{
		{
			Name:    "armstrong",
			Applies: func(f Facts) bool { return f.has(models.PropertyArmstrong) },
			Explain: local(models.FactSourceArmstrong, armstrongFact),
		},
		{
			Name:    "perfect",
			Applies: func(f Facts) bool { return f.has(models.PropertyPerfect) },
			Explain: local(models.FactSourcePerfect, perfectFact),
		},
		{
			Name:    "prime",
			Applies: func(f Facts) bool { return f.has(models.PropertyPrime) },
			Explain: local(models.FactSourcePrime, primeFact),
		},
	}

	if cfg.ParityTemplate {
		rules = append(rules, parityRule())
	}
	if cfg.Lookup != nil {
		rules = append(rules, triviaRule(cfg.Lookup, cfg.Observer))
	}
	if !cfg.ParityTemplate {
		rules = append(rules, parityRule())
	}

	return &Resolver{rules: rules}
}

// Rules returns the names of the active rules in evaluation order.
func (r *Resolver) Rules() []string {
	names := make([]string, len(r.rules))
	for i, rule := range r.rules {
		names[i] = rule.Name
	}
	return names
}

// Resolve returns the fact produced by the first applicable rule. It never
// fails; lookup errors are folded into a degraded Fact.
func (r *Resolver) Resolve(ctx context.Context, f Facts) Fact {
	for _, rule := range r.rules {
		if rule.Applies(f) {
			return rule.Explain(ctx, f)
		}
	}
	// Unreachable: the parity rule always applies.
	return Fact{Text: parityFact(f.Number), Source: models.FactSourceParity}
}

func local(source models.FactSource, text func(int64) string) func(context.Context, Facts) Fact {
	return func(_ context.Context, f Facts) Fact {
		return Fact{Text: text(f.Number), Source: source}
	}
}

func parityRule() Rule {
	return Rule{
		Name:    "parity",
		Applies: func(Facts) bool { return true },
		Explain: local(models.FactSourceParity, parityFact),
	}
}

func triviaRule(lookup Lookup, observer LookupObserver) Rule {
	return Rule{
		Name:    "trivia",
		Applies: func(Facts) bool { return true },
		Explain: func(ctx context.Context, f Facts) Fact {
			start := time.Now()
			text, err := lookup.Lookup(ctx, f.Number)
			elapsed := time.Since(start)

			result := "ok"
			fact := Fact{Text: text, Source: models.FactSourceTrivia}
			if err != nil {
				result = "error"
				fact = Fact{Text: CouldNotFetchText, Source: models.FactSourceFallback, Degraded: true}
				if errors.Is(err, ErrNoFact) {
					result = "empty"
					fact.Text = NoFactText
				}
				zerolog.Ctx(ctx).Warn().
					Err(err).
					Int64("number", f.Number).
					Dur("elapsed", elapsed).
					Msg("Trivia lookup failed, using fallback fact")
			}

			if observer != nil {
				observer.ObserveLookup(result, elapsed)
			}
			return fact
		},
	}
}
