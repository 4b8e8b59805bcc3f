package money

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/govalues/decimal"
)

var (
	// ErrCurrencyMismatch is returned when a binary operation is applied to
	// values denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrOverflow is returned when the number of coins does not fit into an int64.
	ErrOverflow = errors.New("coins overflow")

	errMissingCurrency = fmt.Errorf("%w: missing currency", ErrInvalidArgument)
)

// Money type represents a monetary value: an exact integer number of coins,
// the smallest subunits of its currency.
// The value in tokens, the main unit of the currency, is coins / 10^precision.
//
// Its zero value has no currency and zero coins.
// Money is immutable and safe for concurrent use by multiple goroutines.
// Every operation returns a new value.
type Money struct {
	curr  *Currency // interned or ad hoc currency
	coins int64     // number of coins, never math.MinInt64
}

// newMoneyUnsafe creates a new monetary value without any checks.
// Use it only if you are absolutely sure that the arguments are valid.
func newMoneyUnsafe(c *Currency, coins int64) Money {
	return Money{curr: c, coins: coins}
}

// newMoneySafe rounds the decimal to the precision of the currency
// and converts it to coins.
func newMoneySafe(c *Currency, d decimal.Decimal) (Money, error) {
	if c == nil {
		return Money{}, errMissingCurrency
	}
	coins, err := toCoins(d, c.Precision())
	if err != nil {
		return Money{}, err
	}
	return newMoneyUnsafe(c, coins), nil
}

// toCoins returns d * 10^prec rounded using [rounding half to even].
// The magnitude of the result never exceeds [math.MaxInt64], so that
// negation is always safe.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func toCoins(d decimal.Decimal, prec int) (int64, error) {
	d = d.Round(prec).Pad(prec)
	if d.Scale() != prec {
		return 0, fmt.Errorf("padding %v to %v digits: %w", d, prec, ErrOverflow)
	}
	u := d.Coef()
	if u > math.MaxInt64 {
		return 0, fmt.Errorf("converting %v: %w", d, ErrOverflow)
	}
	if d.IsNeg() {
		return -int64(u), nil
	}
	return int64(u), nil
}

// NewMoney converts a number of tokens to a (possibly rounded) monetary value.
// The float is converted using its shortest decimal representation,
// so that values such as 7e-6 are converted exactly: 7e-6 AMUR is 700 coins.
// Digits beyond the precision of the currency are rounded using
// [rounding half to even].
// See also method [Money.Tokens].
//
// NewMoney returns an error if:
//   - the currency is nil;
//   - the float is a special value (NaN or Inf);
//   - the number of coins does not fit into an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func NewMoney(tokens float64, curr *Currency) (Money, error) {
	m, err := newMoneyFromFloat64(tokens, curr)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v %v: %w", curr, tokens, err)
	}
	return m, nil
}

func newMoneyFromFloat64(tokens float64, curr *Currency) (Money, error) {
	if math.IsNaN(tokens) || math.IsInf(tokens, 0) {
		return Money{}, fmt.Errorf("%w: special value %v", ErrInvalidArgument, tokens)
	}
	d, err := parseFloat64(tokens)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newMoneySafe(curr, d)
}

// parseFloat64 converts a finite float to a decimal using its shortest
// representation. Parsing fails only if the integer part is too long.
func parseFloat64(f float64) (decimal.Decimal, error) {
	s := strconv.FormatFloat(f, 'f', -1, 64)
	return decimal.Parse(s)
}

// MustNewMoney is like [NewMoney] but panics if the value cannot be constructed.
// It simplifies safe initialization of global variables holding monetary values.
func MustNewMoney(tokens float64, curr *Currency) Money {
	m, err := NewMoney(tokens, curr)
	if err != nil {
		panic(fmt.Sprintf("NewMoney(%v, %v) failed: %v", tokens, curr, err))
	}
	return m
}

// ParseMoney converts a decimal string of tokens to a (possibly rounded)
// monetary value.
// The string is read as a fixed-point decimal and every digit up to the
// precision of the currency is preserved: "0.001222222" AMUR is 122222 coins.
// Digits beyond the precision are rounded using [rounding half to even].
// The input string must be in one of the following formats:
//
//	1.234
//	-1234
//	+0.000001234
//
// ParseMoney returns an error if:
//   - the currency is nil;
//   - the string is not a valid decimal;
//   - the number of coins does not fit into an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func ParseMoney(tokens string, curr *Currency) (Money, error) {
	m, err := parseMoney(tokens, curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing %v %q: %w", curr, tokens, err)
	}
	return m, nil
}

func parseMoney(tokens string, curr *Currency) (Money, error) {
	if curr == nil {
		return Money{}, errMissingCurrency
	}
	d, err := decimal.Parse(tokens)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}
	return newMoneySafe(curr, d)
}

// MustParseMoney is like [ParseMoney] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding monetary values.
func MustParseMoney(tokens string, curr *Currency) Money {
	m, err := ParseMoney(tokens, curr)
	if err != nil {
		panic(fmt.Sprintf("ParseMoney(%q, %v) failed: %v", tokens, curr, err))
	}
	return m
}

// NewMoneyFromDecimal converts a decimal number of tokens to a (possibly rounded)
// monetary value.
// See also method [Money.Decimal].
func NewMoneyFromDecimal(tokens decimal.Decimal, curr *Currency) (Money, error) {
	m, err := newMoneySafe(curr, tokens)
	if err != nil {
		return Money{}, fmt.Errorf("converting %v %v: %w", curr, tokens, err)
	}
	return m, nil
}

// NewMoneyFromCoins returns a monetary value with exactly the given number of coins.
// See also method [Money.Coins].
//
// NewMoneyFromCoins returns an error if the currency is nil or coins
// is [math.MinInt64].
func NewMoneyFromCoins(coins int64, curr *Currency) (Money, error) {
	switch {
	case curr == nil:
		return Money{}, fmt.Errorf("converting %v coins: %w", coins, errMissingCurrency)
	case coins == math.MinInt64:
		return Money{}, fmt.Errorf("converting %v coins: %w", coins, ErrOverflow)
	}
	return newMoneyUnsafe(curr, coins), nil
}

// MustNewMoneyFromCoins is like [NewMoneyFromCoins] but panics if the value
// cannot be constructed.
func MustNewMoneyFromCoins(coins int64, curr *Currency) Money {
	m, err := NewMoneyFromCoins(coins, curr)
	if err != nil {
		panic(fmt.Sprintf("NewMoneyFromCoins(%v, %v) failed: %v", coins, curr, err))
	}
	return m
}

// Coins returns the exact number of coins.
// See also constructor [NewMoneyFromCoins].
func (m Money) Coins() int64 {
	return m.coins
}

// Tokens returns the nearest binary floating-point number to coins / 10^precision.
// For values with at most 15 significant digits the result is equal to the
// float literal with the same digits, e.g. 1000 AMUR coins is 0.00001.
// See also constructor [NewMoney].
func (m Money) Tokens() float64 {
	f, _ := m.Decimal().Float64()
	return f
}

// Decimal returns the exact number of tokens as a decimal with scale equal to
// the precision of the currency.
// See also constructor [NewMoneyFromDecimal].
func (m Money) Decimal() decimal.Decimal {
	return decimal.MustNew(m.coins, m.Curr().Precision())
}

// Curr returns the currency of the monetary value.
func (m Money) Curr() *Currency {
	return m.curr
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return cmp.Compare(m.coins, 0)
}

// IsNeg returns:
//
//	true  if m < 0
//	false otherwise
func (m Money) IsNeg() bool {
	return m.coins < 0
}

// IsPos returns:
//
//	true  if m > 0
//	false otherwise
func (m Money) IsPos() bool {
	return m.coins > 0
}

// IsZero returns:
//
//	true  if m = 0
//	false otherwise
func (m Money) IsZero() bool {
	return m.coins == 0
}

// Abs returns the absolute value.
func (m Money) Abs() Money {
	if m.coins < 0 {
		return m.Neg()
	}
	return m
}

// Neg returns a value with the opposite sign.
func (m Money) Neg() Money {
	return newMoneyUnsafe(m.curr, -m.coins)
}

// SameCurr returns true if both values are denominated in the same currency,
// that is, they refer to the same *Currency.
// See also method [Money.Curr].
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Add returns the sum of m and b.
//
// Add returns an error if:
//   - values are denominated in different currencies;
//   - the number of coins of the result does not fit into an int64.
func (m Money) Add(b Money) (Money, error) {
	c, err := m.add(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	c, d, e := m.Curr(), m.Decimal(), b.Decimal()
	d, err := d.AddExact(e, c.Precision())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newMoneySafe(c, d)
}

// Sub returns the difference between m and b.
//
// Sub returns an error if:
//   - values are denominated in different currencies;
//   - the number of coins of the result does not fit into an int64.
func (m Money) Sub(b Money) (Money, error) {
	c, err := m.sub(b)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, err)
	}
	return c, nil
}

func (m Money) sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, ErrCurrencyMismatch
	}
	c, d, e := m.Curr(), m.Decimal(), b.Decimal()
	d, err := d.SubExact(e, c.Precision())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newMoneySafe(c, d)
}

// Mul returns the product of m and factor, rounded to whole coins
// using [rounding half to even].
// The factor is converted to a decimal using its shortest representation,
// so multiplying by 0.5 halves the number of coins exactly.
// See also method [Money.MulDecimal].
//
// Mul returns an error if:
//   - the factor is a special value (NaN or Inf);
//   - the number of coins of the result does not fit into an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) Mul(factor float64) (Money, error) {
	c, err := m.mulFloat64(factor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, factor, err)
	}
	return c, nil
}

func (m Money) mulFloat64(factor float64) (Money, error) {
	if math.IsNaN(factor) || math.IsInf(factor, 0) {
		return Money{}, fmt.Errorf("%w: special value %v", ErrInvalidArgument, factor)
	}
	e, err := parseFloat64(factor)
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return m.mul(e)
}

// MulDecimal returns the product of m and factor, rounded to whole coins
// using [rounding half to even].
//
// MulDecimal returns an error if the number of coins of the result does not
// fit into an int64.
//
// [rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
func (m Money) MulDecimal(factor decimal.Decimal) (Money, error) {
	c, err := m.mul(factor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, factor, err)
	}
	return c, nil
}

func (m Money) mul(e decimal.Decimal) (Money, error) {
	if m.curr == nil {
		return Money{}, errMissingCurrency
	}
	c, d := m.Curr(), m.Decimal()
	d, err := d.MulExact(e, c.Precision())
	if err != nil {
		return Money{}, fmt.Errorf("%w: %w", ErrOverflow, err)
	}
	return newMoneySafe(c, d)
}

// Split returns a slice of values that sum up to m, ensuring the parts are
// as equal as possible: they differ by at most one coin.
// The remainder is distributed among the first parts of the slice.
//
// Split returns an error if the number of parts is not a positive integer.
func (m Money) Split(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w: number of parts must be positive", m, parts, ErrInvalidArgument)
	}
	n := int64(parts)
	quo, rem := m.coins/n, m.coins%n
	res := make([]Money, parts)
	for i := range res {
		coins := quo
		switch {
		case rem > 0:
			coins++
			rem--
		case rem < 0:
			coins--
			rem++
		}
		res[i] = newMoneyUnsafe(m.curr, coins)
	}
	return res, nil
}

// Cmp compares values and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if values are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	return m.cmp(b, "<=>")
}

func (m Money) cmp(b Money, op string) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v %v %v]: %w", m, op, b, ErrCurrencyMismatch)
	}
	return cmp.Compare(m.coins, b.coins), nil
}

// Less returns true if m < b.
// It returns an error if values are denominated in different currencies.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.cmp(b, "<")
	return c < 0, err
}

// LessOrEqual returns true if m <= b.
// It returns an error if values are denominated in different currencies.
func (m Money) LessOrEqual(b Money) (bool, error) {
	c, err := m.cmp(b, "<=")
	return err == nil && c <= 0, err
}

// Greater returns true if m > b.
// It returns an error if values are denominated in different currencies.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.cmp(b, ">")
	return c > 0, err
}

// GreaterOrEqual returns true if m >= b.
// It returns an error if values are denominated in different currencies.
func (m Money) GreaterOrEqual(b Money) (bool, error) {
	c, err := m.cmp(b, ">=")
	return err == nil && c >= 0, err
}

// Equal returns true if m = b.
// It returns an error if values are denominated in different currencies.
func (m Money) Equal(b Money) (bool, error) {
	c, err := m.cmp(b, "==")
	return err == nil && c == 0, err
}

// Min returns the smaller value.
// It returns an error if values are denominated in different currencies.
func (m Money) Min(b Money) (Money, error) {
	switch c, err := m.cmp(b, "min"); {
	case err != nil:
		return Money{}, err
	case c <= 0: // m <= b
		return m, nil
	default:
		return b, nil
	}
}

// Max returns the larger value.
// It returns an error if values are denominated in different currencies.
func (m Money) Max(b Money) (Money, error) {
	switch c, err := m.cmp(b, "max"); {
	case err != nil:
		return Money{}, err
	case c >= 0: // m >= b
		return m, nil
	default:
		return b, nil
	}
}
