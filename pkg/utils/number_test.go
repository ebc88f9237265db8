package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRounding(t *testing.T) {
	assert.Equal(t, 6.67, RoundWithTwoDecimalPlace(100000.0/15000.0))
	assert.Equal(t, 40.0, RoundWithOneDecimalPlace(40.04))
	assert.Equal(t, 12.3, RoundWithOneDecimalPlace(12.25))
	assert.Equal(t, 8.0, RoundToUnit(7.5))
	assert.Equal(t, 0.0, RoundToUnit(0))
}

func TestSafeDivide(t *testing.T) {
	assert.Equal(t, 0.0, SafeDivide(10, 0))
	assert.False(t, math.IsNaN(SafeDivide(0, 0)))
	assert.Equal(t, 2.5, SafeDivide(5, 2))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "AED 100,000", FormatMoney("AED", 100000))
	assert.Equal(t, "-AED 5,000", FormatMoney("AED", -5000))
	assert.Equal(t, "USD 1,235", FormatMoney("USD", 1234.6))
}

func TestGenerateKey(t *testing.T) {
	key, err := GenerateKey("checkout_")
	assert.NoError(t, err)
	assert.Len(t, key, len("checkout_")+24)
}
