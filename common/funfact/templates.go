package funfact

import (
	"fmt"
	"strconv"
	"strings"

	"numbersense/classify-api/common/numbers"
)

func armstrongFact(n int64) string {
	digits := numbers.Digits(n)
	k := len(digits)
	terms := make([]string, len(digits))
	for i, d := range digits {
		terms[i] = fmt.Sprintf("%d^%d", d, k)
	}
	return fmt.Sprintf("%d is an Armstrong number because %s = %d.", n, strings.Join(terms, " + "), n)
}

func perfectFact(n int64) string {
	divisors := numbers.PerfectDivisors(n)
	terms := make([]string, len(divisors))
	for i, d := range divisors {
		terms[i] = strconv.FormatInt(d, 10)
	}
	return fmt.Sprintf("%d is a Perfect number because %d = %s.", n, n, strings.Join(terms, " + "))
}

func primeFact(n int64) string {
	return fmt.Sprintf("%d is a Prime number because it has exactly 2 divisors: 1 and %d.", n, n)
}

func parityFact(n int64) string {
	if numbers.Parity(n) == "odd" {
		return fmt.Sprintf("%d is an odd number because it is not evenly divisible by 2.", n)
	}
	return fmt.Sprintf("%d is an even number because it is evenly divisible by 2.", n)
}
