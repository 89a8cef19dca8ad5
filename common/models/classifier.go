package models

import "slices"

// ClassificationRequest represents a request to classify a number
type ClassificationRequest struct {
	Number string `form:"number" json:"number"`
}

// ClassificationResult represents the result of classifying a single integer
type ClassificationResult struct {
	Number      int64    `json:"number"`
	IsPrime     bool     `json:"is_prime"`
	IsPerfect   bool     `json:"is_perfect"`
	IsArmstrong bool     `json:"is_armstrong"`
	Properties  []string `json:"properties"`
	DigitSum    int      `json:"digit_sum"`
	FunFact     string   `json:"fun_fact"`

	// FactSource records which rule produced FunFact. Not serialized.
	FactSource FactSource `json:"-"`
}

// ErrorResponse represents the payload returned for input that is not an integer
type ErrorResponse struct {
	Number  string `json:"number"`
	Error   bool   `json:"error"`
	Message string `json:"message,omitempty"`
}

// FactSource identifies where a fun fact came from
type FactSource string

const (
	FactSourceArmstrong FactSource = "armstrong"
	FactSourcePerfect   FactSource = "perfect"
	FactSourcePrime     FactSource = "prime"
	FactSourceParity    FactSource = "parity"
	FactSourceTrivia    FactSource = "trivia"
	FactSourceFallback  FactSource = "fallback"
)

// Property tags as they appear in ClassificationResult.Properties
const (
	PropertyArmstrong = "armstrong"
	PropertyPrime     = "prime"
	PropertyPerfect   = "perfect"
	PropertyOdd       = "odd"
	PropertyEven      = "even"
)

// HasProperty reports whether tag is present in the result's properties
func (r ClassificationResult) HasProperty(tag string) bool {
	return slices.Contains(r.Properties, tag)
}
