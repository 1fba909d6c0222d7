package pattern

import "strconv"

// ZeroFill matches n written in decimal. Single-digit values also match with
// one leading zero, so ZeroFill(5) accepts "5" and "05".
func ZeroFill(n int) *Choice {
	s := strconv.Itoa(n)
	if len(s) == 1 {
		return Lits(s, "0"+s)
	}
	return Lits(s)
}

// Padded matches n left-padded with zeros to width digits.
func Padded(n, width int) *Literal {
	s := strconv.Itoa(n)
	for len(s) < width {
		s = "0" + s
	}
	return Lit(s)
}

// Range is a choice over from..to inclusive. zerofill selects ZeroFill for
// each value; otherwise each value is padded to width (0 means no padding).
func Range(from, to int, zerofill bool, width int) *Choice {
	xs := make([]Pattern, 0, max(to-from+1, 0))
	for n := from; n <= to; n++ {
		if zerofill {
			xs = append(xs, ZeroFill(n))
		} else {
			xs = append(xs, Padded(n, width))
		}
	}
	return &Choice{Alternatives: xs}
}
