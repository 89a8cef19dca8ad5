// Package classify runs the parse, predicate, fun fact and assembly pipeline.
package classify

import (
	"context"

	"github.com/rs/zerolog"

	"numbersense/classify-api/common/funfact"
	"numbersense/classify-api/common/models"
	"numbersense/classify-api/common/numbers"
)

// FactResolver produces the fun fact for a set of predicate results.
type FactResolver interface {
	Resolve(ctx context.Context, f funfact.Facts) funfact.Fact
}

// Recorder receives per-request observations. *metrics.Recorder satisfies it.
type Recorder interface {
	ObserveRequest(outcome string)
	ObserveFactSource(source string)
}

// Service classifies integers
type Service struct {
	facts    FactResolver
	recorder Recorder
}

// NewService creates a classification service. recorder may be nil.
func NewService(facts FactResolver, recorder Recorder) *Service {
	return &Service{facts: facts, recorder: recorder}
}

// Classify parses raw and classifies the resulting integer. The only error
// returned is a *numbers.InvalidInputError.
func (s *Service) Classify(ctx context.Context, raw string) (models.ClassificationResult, error) {
	n, err := numbers.Parse(raw)
	if err != nil {
		s.observeRequest("invalid")
		return models.ClassificationResult{}, err
	}
	s.observeRequest("ok")
	return s.ClassifyNumber(ctx, n), nil
}

// ClassifyNumber classifies an already parsed integer.
func (s *Service) ClassifyNumber(ctx context.Context, n int64) models.ClassificationResult {
	isArmstrong := numbers.IsArmstrong(n)
	isPrime := numbers.IsPrime(n)
	// A prime's only proper divisor is 1.
	isPerfect := !isPrime && numbers.IsPerfect(n)

	// Order is part of the response contract: armstrong, prime, perfect, parity.
	properties := make([]string, 0, 4)
	if isArmstrong {
		properties = append(properties, models.PropertyArmstrong)
	}
	if isPrime {
		properties = append(properties, models.PropertyPrime)
	}
	if isPerfect {
		properties = append(properties, models.PropertyPerfect)
	}
	properties = append(properties, numbers.Parity(n))

	fact := s.facts.Resolve(ctx, funfact.Facts{Number: n, Properties: properties})
	if s.recorder != nil {
		s.recorder.ObserveFactSource(string(fact.Source))
	}

	zerolog.Ctx(ctx).Debug().
		Int64("number", n).
		Strs("properties", properties).
		Str("fact_source", string(fact.Source)).
		Bool("degraded", fact.Degraded).
		Msg("Classified number")

	return models.ClassificationResult{
		Number:      n,
		IsPrime:     isPrime,
		IsPerfect:   isPerfect,
		IsArmstrong: isArmstrong,
		Properties:  properties,
		DigitSum:    numbers.DigitSum(n),
		FunFact:     fact.Text,
		FactSource:  fact.Source,
	}
}

func (s *Service) observeRequest(outcome string) {
	if s.recorder != nil {
		s.recorder.ObserveRequest(outcome)
	}
}
