package numbers

import (
	"math/big"
	"slices"
)

// trialDivisionLimit bounds the values IsPrime checks by trial division;
// larger values use a deterministic test.
const trialDivisionLimit = 1 << 40

// IsPrime reports whether n is prime. Values below 2 are never prime.
func IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n >= trialDivisionLimit {
		// ProbablyPrime(0) is exact for inputs below 2^64.
		return big.NewInt(n).ProbablyPrime(0)
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := int64(3); i <= n/i; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// mersenneExponents are the p for which 2^p-1 is prime and
// 2^(p-1)*(2^p-1) fits in an int64.
var mersenneExponents = []uint{2, 3, 5, 7, 13, 17, 19, 31}

// perfectExponent returns p when n = 2^(p-1)*(2^p-1) for a Mersenne prime
// 2^p-1. Every even perfect number has that form and no odd perfect number
// exists below 10^1500, so this covers the whole int64 range.
func perfectExponent(n int64) (uint, bool) {
	for _, p := range mersenneExponents {
		if n == int64(1)<<(p-1)*(int64(1)<<p-1) {
			return p, true
		}
	}
	return 0, false
}

// IsPerfect reports whether n equals the sum of its proper divisors.
func IsPerfect(n int64) bool {
	_, ok := perfectExponent(n)
	return ok
}

// PerfectDivisors returns the proper divisors of a perfect number in
// ascending order, or nil when n is not perfect.
func PerfectDivisors(n int64) []int64 {
	p, ok := perfectExponent(n)
	if !ok {
		return nil
	}
	mersenne := int64(1)<<p - 1

	// 1, 2, ..., 2^(p-1) are all below M, then M, 2M, ..., 2^(p-2)M.
	divisors := make([]int64, 0, 2*p-1)
	for i := uint(0); i < p; i++ {
		divisors = append(divisors, int64(1)<<i)
	}
	for i := uint(0); i+1 < p; i++ {
		divisors = append(divisors, mersenne<<i)
	}
	return divisors
}

// IsArmstrong reports whether n equals the sum of its digits each raised to
// the number of digits. Negative values are never Armstrong numbers.
func IsArmstrong(n int64) bool {
	if n < 0 {
		return false
	}
	digits := Digits(n)
	k := len(digits)
	target := uint64(n)

	var sum uint64
	for _, d := range digits {
		sum += pow(uint64(d), k)
		// sum <= target + 9^19 always fits in uint64.
		if sum > target {
			return false
		}
	}
	return sum == target
}

// Digits returns the decimal digits of |n|, most significant first.
func Digits(n int64) []int {
	mag := magnitude(n)
	if mag == 0 {
		return []int{0}
	}
	var digits []int
	for mag > 0 {
		digits = append(digits, int(mag%10))
		mag /= 10
	}
	slices.Reverse(digits)
	return digits
}

// DigitSum returns the sum of the decimal digits of |n|.
func DigitSum(n int64) int {
	sum := 0
	for mag := magnitude(n); mag > 0; mag /= 10 {
		sum += int(mag % 10)
	}
	return sum
}

// Parity returns "odd" or "even".
func Parity(n int64) string {
	if n%2 != 0 {
		return "odd"
	}
	return "even"
}

// magnitude returns |n| as an unsigned value; MinInt64 maps to 1<<63.
func magnitude(n int64) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}

func pow(base uint64, exp int) uint64 {
	result := uint64(1)
	for i := 0; i < exp; i++ {
		result *= base
	}
	return result
}
