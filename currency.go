package money

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

//go:generate go run scripts/currency/codegen.go

// MaxPrecision is the largest number of coin digits a currency may have.
// With 18 digits one token is still representable as an int64 number of coins.
const MaxPrecision = 18

// unknownCurr is the display name reported by a nil currency.
const unknownCurr = "XXX"

var (
	// ErrInvalidArgument is returned when an input cannot be turned into
	// a currency or a monetary value.
	ErrInvalidArgument = errors.New("invalid argument")

	errUnknownCurrency = fmt.Errorf("%w: unknown currency", ErrInvalidArgument)
)

var specValidator = validator.New(validator.WithRequiredStructEnabled())

// Currency is an immutable descriptor of a currency: an optional identifier,
// a display name and the number of decimal digits its coin subdivides a token into.
//
// Currencies are always handled through pointers.
// Predefined currencies such as [AMUR] and [BTC] are interned: [NewCurrency] and
// [ParseCurr] return the very same pointer for a registered identifier, so
// two monetary values share a currency if and only if their pointers are equal.
// Currencies built from a [CurrencySpec] without a registered identifier
// are never interned.
//
// A nil *Currency is valid to call methods on and describes an unknown currency
// with precision 0.
type Currency struct {
	id          string
	displayName string
	precision   int
	registered  bool
}

// CurrencySpec describes a currency to be created by [NewCurrency].
type CurrencySpec struct {
	// ID is the optional stable identifier, e.g. "AMUR".
	// If it names a predefined currency, the remaining fields are ignored.
	ID string `json:"id,omitempty"`
	// DisplayName is the human-readable label, e.g. "AMUR".
	DisplayName string `json:"displayName" validate:"required"`
	// Precision is the number of digits after the decimal point of one coin.
	Precision int `json:"precision" validate:"min=0,max=18"`
}

// NewCurrency returns the predefined currency if spec.ID is registered, and
// a new, non-interned currency otherwise.
// Two calls with the same unregistered spec return distinct pointers.
//
// NewCurrency returns an error wrapping [ErrInvalidArgument] if the currency
// is not predefined and:
//   - the display name is empty;
//   - the precision is negative or greater than [MaxPrecision].
func NewCurrency(spec CurrencySpec) (*Currency, error) {
	if spec.ID != "" {
		if c, ok := currLookup[spec.ID]; ok {
			return c, nil
		}
	}
	if err := specValidator.Struct(spec); err != nil {
		return nil, fmt.Errorf("creating currency %q: %w: %w", spec.DisplayName, ErrInvalidArgument, err)
	}
	c := &Currency{
		id:          spec.ID,
		displayName: spec.DisplayName,
		precision:   spec.Precision,
	}
	return c, nil
}

// MustNewCurrency is like [NewCurrency] but panics if the spec is not valid.
// It simplifies safe initialization of global variables holding currencies.
func MustNewCurrency(spec CurrencySpec) *Currency {
	c, err := NewCurrency(spec)
	if err != nil {
		panic(fmt.Sprintf("NewCurrency(%+v) failed: %v", spec, err))
	}
	return c
}

// ParseCurr returns the predefined currency with the given identifier.
// The identifier may be given in upper or lower case:
//
//	AMUR
//	amur
//
// ParseCurr returns an error wrapping [ErrInvalidArgument] if the identifier
// is not registered.
func ParseCurr(id string) (*Currency, error) {
	c, ok := currLookup[id]
	if !ok {
		return nil, fmt.Errorf("parsing %q: %w", id, errUnknownCurrency)
	}
	return c, nil
}

// MustParseCurr is like [ParseCurr] but panics if the identifier is not registered.
func MustParseCurr(id string) *Currency {
	c, err := ParseCurr(id)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", id, err))
	}
	return c
}

// Currencies returns the predefined currencies ordered by identifier.
func Currencies() []*Currency {
	res := make([]*Currency, 0, len(currLookup))
	for key, c := range currLookup {
		if key == c.id {
			res = append(res, c)
		}
	}
	sort.Slice(res, func(i, j int) bool { return res[i].id < res[j].id })
	return res
}

// ID returns the identifier of the currency, or an empty string if it has none.
func (c *Currency) ID() string {
	if c == nil {
		return ""
	}
	return c.id
}

// DisplayName returns the human-readable label of the currency.
func (c *Currency) DisplayName() string {
	if c == nil {
		return unknownCurr
	}
	return c.displayName
}

// Precision returns the number of digits after the decimal point required for
// representing one coin of the currency.
// For example, AMUR and BTC have precision 8, so their coin is 0.00000001 tokens.
func (c *Currency) Precision() int {
	if c == nil {
		return 0
	}
	return c.precision
}

// IsRegistered reports whether c is one of the predefined, interned currencies.
func (c *Currency) IsRegistered() bool {
	return c != nil && c.registered
}

// String implements the [fmt.Stringer] interface and returns the display name.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c *Currency) String() string {
	return c.DisplayName()
}

// key returns the identifier used for serialization.
// Currencies without identifier fall back to their display name.
func (c *Currency) key() string {
	if id := c.ID(); id != "" {
		return id
	}
	return c.DisplayName()
}

// MarshalText implements [encoding.TextMarshaler] interface.
// MarshalText returns the identifier, or the display name if there is none.
// There is no matching unmarshaler: decoding into a *Currency would bypass
// interning, use [ParseCurr] instead.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c *Currency) MarshalText() ([]byte, error) {
	return []byte(c.key()), nil
}

// MarshalJSON implements the [json.Marshaler] interface.
// See also method [Currency.MarshalText].
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c *Currency) MarshalJSON() ([]byte, error) {
	k := c.key()
	text := make([]byte, 0, len(k)+2)
	text = append(text, '"')
	text = append(text, k...)
	text = append(text, '"')
	return text, nil
}

// Value implements the [driver.Valuer] interface.
//
// [driver.Valuer]: https://pkg.go.dev/database/sql/driver#Valuer
func (c *Currency) Value() (driver.Value, error) {
	return c.key(), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description       |
//	| ---------- | ------- | ----------------- |
//	| %c, %s, %v | AMUR    | Display name      |
//	| %q         | "AMUR"  | Quoted name       |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c *Currency) Format(state fmt.State, verb rune) {
	text := c.DisplayName()
	if verb == 'q' || verb == 'Q' {
		text = `"` + text + `"`
	}
	text = pad(state, text)

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		state.Write([]byte(text))
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// pad surrounds text with spaces up to the width requested by state.
// Trailing spaces are used if the '-' flag is set.
func pad(state fmt.State, text string) string {
	w, ok := state.Width()
	if !ok || w <= len(text) {
		return text
	}
	spaces := strings.Repeat(" ", w-len(text))
	if state.Flag('-') {
		return text + spaces
	}
	return spaces + text
}
