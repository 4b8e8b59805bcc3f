/*
Package money implements monetary values in crypto and fiat currencies.
Amounts are kept as an exact integer number of coins, the smallest subunit of
the currency, so that arithmetic never suffers from binary floating-point drift.
Conversions from and to tokens, the main unit of the currency, are carried out
with the [decimal] package.

# Features

  - Immutable monetary values, safe for concurrent use by multiple goroutines
  - Interned registry of well-known currencies, extensible with ad hoc currencies
  - Exact conversion of float and string inputs, e.g. 7e-6 AMUR is 700 coins
  - Currency-checked comparison and arithmetic operations
  - Display formatting with thousands grouping and trailing zero stripping

# Representation

The package consists of two main types: Money and Currency.
A Currency describes a unit of account: an optional identifier, a display
name, and a precision, which is the number of decimal digits of one coin.
Currencies are always used through pointers, and two currencies are the same
if and only if their pointers are equal.
Predefined currencies, such as [AMUR] or [USD], are interned, so that
[NewCurrency] and [ParseCurr] always return the same pointer for the same
identifier.

A Money value consists of a *Currency and an int64 number of coins.
The number of tokens is coins / 10^precision.

# Supported Ranges

The number of coins ranges from -(2^63 - 1) to 2^63 - 1 inclusive.
For a currency with precision 8 this is approximately ±92 billion tokens.
Precision is limited to [MaxPrecision] digits.

# Rounding

Inputs with more fractional digits than the precision of the currency,
and results of multiplication, are rounded to whole coins
using [rounding half to even].

# Errors

Constructors and arithmetic operations return errors that wrap one of
[ErrInvalidArgument], [ErrCurrencyMismatch], or [ErrOverflow],
so callers can inspect them with [errors.Is].
Must variants of the constructors panic instead and are intended for
initialization of global variables.

[rounding half to even]: https://en.wikipedia.org/wiki/Rounding#Rounding_half_to_even
*/
package money
