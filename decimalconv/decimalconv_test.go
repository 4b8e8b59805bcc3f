package decimalconv

import (
	"testing"

	"github.com/amur-wallet/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromDecimal(t *testing.T) {
	m, err := FromDecimal(decimal.RequireFromString("0.001222222"), money.AMUR)
	require.NoError(t, err)
	assert.Equal(t, int64(122222), m.Coins())
	assert.Same(t, money.AMUR, m.Curr())

	m, err = FromDecimal(decimal.RequireFromString("-12345.456987"), money.AMUR)
	require.NoError(t, err)
	assert.Equal(t, int64(-1234545698700), m.Coins())

	m, err = FromDecimal(decimal.NewFromInt(100), money.USD)
	require.NoError(t, err)
	assert.Equal(t, "USD 100.00", m.String())
}

func TestFromDecimal_Error(t *testing.T) {
	_, err := FromDecimal(decimal.NewFromInt(1), nil)
	assert.ErrorIs(t, err, money.ErrInvalidArgument)

	_, err = FromDecimal(decimal.RequireFromString("100000000000"), money.BTC)
	assert.ErrorIs(t, err, money.ErrOverflow)
}

func TestToDecimal(t *testing.T) {
	tests := []struct {
		m    money.Money
		want string
	}{
		{money.MustNewMoneyFromCoins(1000, money.AMUR), "0.00001"},
		{money.MustParseMoney("88.9841", money.AMUR), "88.9841"},
		{money.MustParseMoney("-0.5", money.USD), "-0.5"},
		{money.MustNewMoneyFromCoins(0, money.BTC), "0"},
	}
	for _, tt := range tests {
		got := ToDecimal(tt.m)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "ToDecimal(%v) = %v, want %v", tt.m, got, tt.want)
	}
}

func TestRoundTrip(t *testing.T) {
	for _, s := range []string{"0", "0.00000001", "46.873", "59.214", "-9000.00545599"} {
		m := money.MustParseMoney(s, money.BTC)
		got, err := FromDecimal(ToDecimal(m), money.BTC)
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
}
