package numbers

import (
	"math"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsPrime(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 7919, 2147483647}
	for _, n := range primes {
		assert.True(t, IsPrime(n), "IsPrime(%d)", n)
	}

	notPrimes := []int64{math.MinInt64, -7, -2, 0, 1, 4, 9, 15, 25, 91, 7917, 2147483649}
	for _, n := range notPrimes {
		assert.False(t, IsPrime(n), "IsPrime(%d)", n)
	}
}

func TestIsPrimeMatchesSieve(t *testing.T) {
	const limit = 2000
	composite := make([]bool, limit+1)
	for i := 2; i*i <= limit; i++ {
		if composite[i] {
			continue
		}
		for j := i * i; j <= limit; j += i {
			composite[j] = true
		}
	}

	for n := 2; n <= limit; n++ {
		assert.Equal(t, !composite[n], IsPrime(int64(n)), "IsPrime(%d)", n)
	}
}

func TestIsPerfect(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{6, true},
		{28, true},
		{496, true},
		{8128, true},
		{33550336, true},
		{0, false},
		{1, false},
		{5, false},
		{12, false},
		{-6, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsPerfect(tc.n), "IsPerfect(%d)", tc.n)
	}
}

func TestIsPerfectMatchesDivisorSum(t *testing.T) {
	for n := int64(-10); n <= 10000; n++ {
		var sum int64
		for d := int64(1); d <= n/2; d++ {
			if n%d == 0 {
				sum += d
			}
		}
		assert.Equal(t, n >= 2 && sum == n, IsPerfect(n), "IsPerfect(%d)", n)
	}
}

func TestIsPerfect_LargeValues(t *testing.T) {
	assert.True(t, IsPerfect(8589869056))
	assert.True(t, IsPerfect(137438691328))
	assert.True(t, IsPerfect(2305843008139952128))

	assert.False(t, IsPerfect(9000000000000000000))
	assert.False(t, IsPerfect(2305843008139952127))
	assert.False(t, IsPerfect(math.MaxInt64))
}

func TestPerfectDivisors(t *testing.T) {
	assert.Equal(t, []int64{1, 2, 3}, PerfectDivisors(6))
	assert.Equal(t, []int64{1, 2, 4, 7, 14}, PerfectDivisors(28))
	assert.Equal(t, []int64{1, 2, 4, 8, 16, 31, 62, 124, 248}, PerfectDivisors(496))
	assert.Nil(t, PerfectDivisors(12))
	assert.Nil(t, PerfectDivisors(1))
	assert.Nil(t, PerfectDivisors(-28))

	n := int64(2305843008139952128)
	divisors := PerfectDivisors(n)
	assert.Len(t, divisors, 61)
	assert.True(t, slices.IsSorted(divisors))
	var sum int64
	for _, d := range divisors {
		assert.Zero(t, n%d)
		sum += d
	}
	assert.Equal(t, n, sum)
}

func TestIsPrime_LargeValues(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{trialDivisionLimit - 87, true}, // largest prime below 2^40
		{trialDivisionLimit - 1, false},
		{trialDivisionLimit + 15, true},
		{2305843009213693951, true}, // 2^61-1
		{9223372036854775783, true}, // largest prime below 2^63
		{4611686014132420609, false}, // (2^31-1)^2
		{math.MaxInt64, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsPrime(tc.n), "IsPrime(%d)", tc.n)
	}
}

func TestPredicates_NearMaxInt64AreFast(t *testing.T) {
	start := time.Now()
	for n := int64(math.MaxInt64); n > math.MaxInt64-200; n-- {
		IsPrime(n)
		IsPerfect(n)
		IsArmstrong(n)
		DigitSum(n)
	}
	assert.Less(t, time.Since(start), time.Second)
}

func TestIsArmstrong(t *testing.T) {
	tests := []struct {
		n    int64
		want bool
	}{
		{0, true},
		{1, true},
		{9, true},
		{153, true},
		{370, true},
		{371, true},
		{407, true},
		{9474, true},
		{10, false},
		{123, false},
		{9475, false},
		{-371, false},
		{-1, false},
		{math.MaxInt64, false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, IsArmstrong(tc.n), "IsArmstrong(%d)", tc.n)
	}
}

func TestDigits(t *testing.T) {
	assert.Equal(t, []int{0}, Digits(0))
	assert.Equal(t, []int{3, 7, 1}, Digits(371))
	assert.Equal(t, []int{1, 2, 3}, Digits(-123))
	assert.Equal(t, []int{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 8}, Digits(math.MinInt64))
}

func TestDigitSum(t *testing.T) {
	assert.Equal(t, 6, DigitSum(-123))
	assert.Equal(t, 0, DigitSum(0))
	assert.Equal(t, 11, DigitSum(371))
	assert.Equal(t, 89, DigitSum(math.MinInt64))
}

func TestParity(t *testing.T) {
	assert.Equal(t, "even", Parity(4))
	assert.Equal(t, "odd", Parity(-3))
	assert.Equal(t, "even", Parity(0))
	assert.Equal(t, "odd", Parity(math.MaxInt64))
	assert.Equal(t, "even", Parity(math.MinInt64))
}
