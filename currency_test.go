package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"testing"
)

func TestNewCurrency(t *testing.T) {
	t.Run("predefined", func(t *testing.T) {
		tests := []struct {
			spec CurrencySpec
			want *Currency
		}{
			{CurrencySpec{ID: AMUR.ID(), DisplayName: AMUR.DisplayName(), Precision: AMUR.Precision()}, AMUR},
			{CurrencySpec{ID: "AMUR", DisplayName: "other", Precision: 2}, AMUR},
			{CurrencySpec{ID: "amur"}, AMUR},
			{CurrencySpec{ID: BTC.ID()}, BTC},
			{CurrencySpec{ID: UPC.ID()}, UPC},
			{CurrencySpec{ID: USD.ID()}, USD},
			{CurrencySpec{ID: EUR.ID()}, EUR},
			{CurrencySpec{ID: CNY.ID()}, CNY},
		}
		for _, tt := range tests {
			got, err := NewCurrency(tt.spec)
			if err != nil {
				t.Errorf("NewCurrency(%+v) failed: %v", tt.spec, err)
				continue
			}
			if got != tt.want {
				t.Errorf("NewCurrency(%+v) = %p, want %p", tt.spec, got, tt.want)
			}
		}
	})

	t.Run("ad hoc", func(t *testing.T) {
		tests := []CurrencySpec{
			{DisplayName: "one", Precision: 4},
			{DisplayName: "zero", Precision: 0},
			{DisplayName: "max", Precision: MaxPrecision},
			{ID: "ETH", DisplayName: "ETH", Precision: 18},
		}
		for _, tt := range tests {
			c1, err := NewCurrency(tt)
			if err != nil {
				t.Errorf("NewCurrency(%+v) failed: %v", tt, err)
				continue
			}
			c2 := MustNewCurrency(tt)
			if c1 == c2 {
				t.Errorf("NewCurrency(%+v) returned the same instance twice", tt)
			}
			if c1.IsRegistered() {
				t.Errorf("NewCurrency(%+v).IsRegistered() = true, want false", tt)
			}
			if got := c1.String(); got != tt.DisplayName {
				t.Errorf("NewCurrency(%+v).String() = %q, want %q", tt, got, tt.DisplayName)
			}
			if got := c1.Precision(); got != tt.Precision {
				t.Errorf("NewCurrency(%+v).Precision() = %v, want %v", tt, got, tt.Precision)
			}
			if got := c1.ID(); got != tt.ID {
				t.Errorf("NewCurrency(%+v).ID() = %q, want %q", tt, got, tt.ID)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]CurrencySpec{
			"empty":              {},
			"display name":       {Precision: 2},
			"negative precision": {DisplayName: "one", Precision: -1},
			"large precision":    {DisplayName: "one", Precision: MaxPrecision + 1},
			"unknown id":         {ID: "XBT", Precision: 8},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := NewCurrency(tt)
				if err == nil {
					t.Errorf("NewCurrency(%+v) did not fail", tt)
					return
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("NewCurrency(%+v) failed with %v, want %v", tt, err, ErrInvalidArgument)
				}
			})
		}
	})
}

func TestMustNewCurrency(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustNewCurrency(CurrencySpec{}) did not panic")
			}
		}()
		MustNewCurrency(CurrencySpec{})
	})
}

func TestCurrency_Parse(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			id   string
			want *Currency
		}{
			{"AMUR", AMUR},
			{"amur", AMUR},
			{"BTC", BTC},
			{"btc", BTC},
			{"UPC", UPC},
			{"USD", USD},
			{"usd", USD},
			{"EUR", EUR},
			{"CNY", CNY},
		}
		for _, tt := range tests {
			got, err := ParseCurr(tt.id)
			if err != nil {
				t.Errorf("ParseCurr(%q) failed: %v", tt.id, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt.id, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{
			"", "XXX", "Amur", "xbt", "$", "JPY",
		}
		for _, tt := range tests {
			_, err := ParseCurr(tt)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseCurr(%q) = %v, want %v", tt, err, ErrInvalidArgument)
			}
		}
	})
}

func TestMustParseCurr(t *testing.T) {
	t.Run("error", func(t *testing.T) {
		defer func() {
			if r := recover(); r == nil {
				t.Errorf("MustParseCurr(\"UUU\") did not panic")
			}
		}()
		MustParseCurr("UUU")
	})
}

func TestCurrencies(t *testing.T) {
	got := Currencies()
	want := []*Currency{AMUR, BTC, CNY, EUR, UPC, USD}
	if len(got) != len(want) {
		t.Fatalf("Currencies() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Currencies()[%v] = %v, want %v", i, got[i], want[i])
		}
		c, err := NewCurrency(CurrencySpec{ID: got[i].ID()})
		if err != nil {
			t.Errorf("NewCurrency(%q) failed: %v", got[i].ID(), err)
			continue
		}
		if c != got[i] {
			t.Errorf("NewCurrency(%q) = %p, want %p", got[i].ID(), c, got[i])
		}
		if !c.IsRegistered() {
			t.Errorf("%v.IsRegistered() = false, want true", c)
		}
	}
}

func TestCurrency_Precision(t *testing.T) {
	tests := []struct {
		curr *Currency
		want int
	}{
		{nil, 0},
		{AMUR, 8},
		{BTC, 8},
		{UPC, 2},
		{USD, 2},
		{EUR, 2},
		{CNY, 2},
	}
	for _, tt := range tests {
		got := tt.curr.Precision()
		if got != tt.want {
			t.Errorf("%v.Precision() = %v, want %v", tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_String(t *testing.T) {
	tests := []struct {
		curr *Currency
		want string
	}{
		{nil, "XXX"},
		{AMUR, "AMUR"},
		{BTC, "BTC"},
		{MustNewCurrency(CurrencySpec{DisplayName: "one", Precision: 4}), "one"},
	}
	for _, tt := range tests {
		got := tt.curr.String()
		if got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCurrency_Format(t *testing.T) {
	tests := []struct {
		curr   *Currency
		format string
		want   string
	}{
		{AMUR, "%c", "AMUR"},
		{AMUR, "%s", "AMUR"},
		{AMUR, "%v", "AMUR"},
		{AMUR, "%q", "\"AMUR\""},
		{AMUR, "%7s", "   AMUR"},
		{AMUR, "%-7s", "AMUR   "},
		{AMUR, "%8q", "  \"AMUR\""},
		{AMUR, "%d", "%!d(money.Currency=AMUR)"},
		{USD, "%2v", "USD"},
		{nil, "%v", "XXX"},
	}
	for _, tt := range tests {
		got := fmt.Sprintf(tt.format, tt.curr)
		if got != tt.want {
			t.Errorf("fmt.Sprintf(%q, %v) = %q, want %q", tt.format, tt.curr, got, tt.want)
		}
	}
}

func TestCurrency_MarshalJSON(t *testing.T) {
	tests := []struct {
		curr *Currency
		want string
	}{
		{AMUR, `"AMUR"`},
		{EUR, `"EUR"`},
		{MustNewCurrency(CurrencySpec{DisplayName: "one", Precision: 4}), `"one"`},
		{MustNewCurrency(CurrencySpec{ID: "ETH", DisplayName: "Ether", Precision: 18}), `"ETH"`},
	}
	for _, tt := range tests {
		got, err := json.Marshal(tt.curr)
		if err != nil {
			t.Errorf("json.Marshal(%v) failed: %v", tt.curr, err)
			continue
		}
		if string(got) != tt.want {
			t.Errorf("json.Marshal(%v) = %s, want %s", tt.curr, got, tt.want)
		}
		text, err := tt.curr.MarshalText()
		if err != nil {
			t.Errorf("%v.MarshalText() failed: %v", tt.curr, err)
			continue
		}
		if `"`+string(text)+`"` != tt.want {
			t.Errorf("%v.MarshalText() = %s, want %s", tt.curr, text, tt.want)
		}
	}
}

func TestCurrency_Value(t *testing.T) {
	got, err := BTC.Value()
	if err != nil {
		t.Fatalf("BTC.Value() failed: %v", err)
	}
	if got != "BTC" {
		t.Errorf("BTC.Value() = %v, want %v", got, "BTC")
	}
}
