package money

import (
	"fmt"
	"strconv"
	"strings"
)

// pow10 holds powers of ten up to 10^MaxPrecision.
var pow10 = [MaxPrecision + 1]uint64{
	1,
	10,
	100,
	1_000,
	10_000,
	100_000,
	1_000_000,
	10_000_000,
	100_000_000,
	1_000_000_000,
	10_000_000_000,
	100_000_000_000,
	1_000_000_000_000,
	10_000_000_000_000,
	100_000_000_000_000,
	1_000_000_000_000_000,
	10_000_000_000_000_000,
	100_000_000_000_000_000,
	1_000_000_000_000_000_000,
}

// parts splits the magnitude of m into whole tokens and remaining coins.
func (m Money) parts() (whole, frac uint64) {
	u := uint64(m.coins)
	if m.coins < 0 {
		u = uint64(-m.coins)
	}
	p := pow10[m.Curr().Precision()]
	return u / p, u % p
}

// FormatIntegerPart returns the digits before the decimal point.
// Negative values are prefixed with a minus sign, so -0.5 is formatted as "-0".
func (m Money) FormatIntegerPart() string {
	whole, _ := m.parts()
	buf := make([]byte, 0, 24)
	if m.IsNeg() {
		buf = append(buf, '-')
	}
	buf = appendWhole(buf, whole, false)
	return string(buf)
}

// FormatFractionPart returns the decimal point followed by exactly as many
// digits as the precision of the currency, e.g. ".98410000" for 88.9841 AMUR.
// The fraction part is never signed.
// For currencies with precision 0 the result is an empty string.
func (m Money) FormatFractionPart() string {
	prec := m.Curr().Precision()
	if prec == 0 {
		return ""
	}
	_, frac := m.parts()
	buf := make([]byte, 0, prec+1)
	buf = append(buf, '.')
	buf = appendFrac(buf, frac, prec)
	return string(buf)
}

// FormatAmount returns the amount in tokens, without currency.
//
// If useGrouping is true, a comma is inserted between every three digits of the
// integer part: "12,345.45698700".
// If stripTrailingZeros is true, trailing zeros of the fraction are removed,
// keeping at least one fractional digit: "88.9841", "0.001", "17.0".
// The result always represents the exact number of coins.
func (m Money) FormatAmount(stripTrailingZeros, useGrouping bool) string {
	buf := make([]byte, 0, 32)
	if m.IsNeg() {
		buf = append(buf, '-')
	}
	buf = m.appendMagnitude(buf, stripTrailingZeros, useGrouping)
	return string(buf)
}

// appendMagnitude appends the unsigned amount in tokens.
func (m Money) appendMagnitude(buf []byte, strip, group bool) []byte {
	whole, frac := m.parts()
	buf = appendWhole(buf, whole, group)
	digits := m.Curr().Precision()
	if digits == 0 {
		return buf
	}
	if strip {
		for digits > 1 && frac%10 == 0 {
			frac /= 10
			digits--
		}
	}
	buf = append(buf, '.')
	return appendFrac(buf, frac, digits)
}

// appendWhole appends the decimal digits of whole,
// separated into groups of three by commas if group is true.
func appendWhole(buf []byte, whole uint64, group bool) []byte {
	var digs [20]byte
	s := strconv.AppendUint(digs[:0], whole, 10)
	if !group {
		return append(buf, s...)
	}
	for i, d := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			buf = append(buf, ',')
		}
		buf = append(buf, d)
	}
	return buf
}

// appendFrac appends exactly n digits of frac, zero-padded to the left.
func appendFrac(buf []byte, frac uint64, n int) []byte {
	start := len(buf)
	for i := 0; i < n; i++ {
		buf = append(buf, '0')
	}
	for pos := len(buf) - 1; pos >= start; pos-- {
		buf[pos] = byte(frac%10) + '0'
		frac /= 10
	}
	return buf
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of the value: the display name of the currency followed
// by the amount with all digits of its precision, e.g. "AMUR 88.98410000".
// See also methods [Currency.String], [Money.FormatAmount], [Money.Format].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.Curr().String() + " " + m.FormatAmount(false, false)
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example            | Description                |
//	| ------ | ------------------ | -------------------------- |
//	| %s, %v | AMUR 5.67800000    | Currency and amount        |
//	| %q     | "AMUR 5.67800000"  | Quoted currency and amount |
//	| %f     | 5.67800000         | Amount                     |
//	| %d     | 567800000          | Amount in coins            |
//	| %c     | AMUR               | Currency                   |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with all verbs except %c.
//
// Precision is only supported for the %f verb.
// The default precision is equal to the precision of the currency.
// Smaller precisions round the amount using [rounding half to even].
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 'c', 'C':
		text = m.Curr().DisplayName()
	case 'd', 'D':
		whole := m.Abs().coins
		text = m.sign(state) + strconv.FormatInt(whole, 10)
	case 'f', 'F':
		text = m.sign(state) + m.fixed(state)
	default:
		text = m.Curr().DisplayName() + " " + m.sign(state) + string(m.appendMagnitude(nil, false, false))
	}
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'f', 'F', 'd', 'D', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Money="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// sign returns the arithmetic sign to print in front of the amount.
func (m Money) sign(state fmt.State) string {
	switch {
	case m.IsNeg():
		return "-"
	case state.Flag('+'):
		return "+"
	}
	return ""
}

// fixed returns the unsigned amount with the number of fractional digits
// requested by state.
func (m Money) fixed(state fmt.State) string {
	prec := m.Curr().Precision()
	p, ok := state.Precision()
	switch {
	case !ok || p == prec:
		return string(m.appendMagnitude(nil, false, false))
	case p < prec:
		return m.Decimal().Abs().Round(p).String()
	}
	text := string(m.appendMagnitude(nil, false, false))
	if prec == 0 {
		text += "."
	}
	return text + strings.Repeat("0", p-prec)
}
