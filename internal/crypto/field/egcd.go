package field

// ExtendedGCD returns gcd(a, b) together with Bézout coefficients x, y such
// that a*x + b*y = gcd.
func ExtendedGCD(a, b int64) (gcd, x, y int64) {
	if b == 0 {
		return a, 1, 0
	}
	d, s, t := ExtendedGCD(b, a%b)
	return d, t, s - (a/b)*t
}
