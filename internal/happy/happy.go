package happy

// IsHappy reports whether n is a happy number: repeatedly replacing the value
// with the sum of the squares of its decimal digits reaches 1. Unhappy numbers
// revisit an earlier value instead (e.g. the 4→16→37→58→89→145→42→20→4 loop).
// Negative numbers are never happy.
func IsHappy(n int) bool {
	if n < 0 {
		return false
	}
	seen := make(map[int]struct{})
	for n != 1 {
		if _, ok := seen[n]; ok {
			return false
		}
		seen[n] = struct{}{}
		n = digitSquareSum(n)
	}
	return true
}

// Sequence returns the values visited by the iteration starting at n, ending
// at 1 for happy numbers or at the first repeated value for unhappy ones (the
// repeat is included so the cycle entry is visible): Sequence(19) is
// [19 82 68 100 1], Sequence(4) is [4 16 37 58 89 145 42 20 4].
func Sequence(n int) []int {
	seq := []int{n}
	if n < 0 {
		return seq
	}
	seen := make(map[int]struct{})
	for n != 1 {
		if _, ok := seen[n]; ok {
			break
		}
		seen[n] = struct{}{}
		n = digitSquareSum(n)
		seq = append(seq, n)
	}
	return seq
}

// digitSquareSum sums the squares of the base-10 digits of n.
func digitSquareSum(n int) int {
	sum := 0
	for n > 0 {
		d := n % 10
		sum += d * d
		n /= 10
	}
	return sum
}
