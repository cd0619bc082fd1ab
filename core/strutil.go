package core

// itoa converts an integer to a string without using fmt package
// This is a lightweight alternative for embedded systems
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := n < 0
	if negative {
		n = -n
	}

	var buf [20]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	if negative {
		pos--
		buf[pos] = '-'
	}

	return string(buf[pos:])
}

// utoa converts an unsigned integer to a string
func utoa(n uint32) string {
	if n == 0 {
		return "0"
	}

	var buf [10]byte
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}

	return string(buf[pos:])
}

// formatFixed renders a fixed-point value with the given number of
// fractional digits, e.g. formatFixed(3300, 3) == "3.300".
func formatFixed(value, precision int) string {
	if precision <= 0 {
		return itoa(value)
	}

	sign := ""
	if value < 0 {
		sign = "-"
		value = -value
	}

	scale := 1
	for i := 0; i < precision; i++ {
		scale *= 10
	}

	frac := itoa(value % scale)
	for len(frac) < precision {
		frac = "0" + frac
	}
	return sign + itoa(value/scale) + "." + frac
}
