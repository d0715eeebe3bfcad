package domain

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFloat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		text     string
		expected float64
	}{
		{name: "decimal", text: "1.050", expected: 1.050},
		{name: "integer", text: "68", expected: 68},
		{name: "negative", text: "-4.5", expected: -4.5},
		{name: "exponent", text: "1e-3", expected: 0.001},
		{name: "surrounding whitespace", text: "  1.010\t", expected: 1.010},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			value, err := ParseFloat("gravity value", tc.text)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, value)
		})
	}
}

func TestParseFloatSpecialValues(t *testing.T) {
	t.Parallel()

	value, err := ParseFloat("gravity value", "NaN")
	require.NoError(t, err)
	assert.True(t, math.IsNaN(value))

	value, err = ParseFloat("gravity value", "1e400")
	require.NoError(t, err, "out of range input should propagate as infinity")
	assert.True(t, math.IsInf(value, 1))
}

func TestParseFloatFailure(t *testing.T) {
	t.Parallel()

	for _, text := range []string{"", "bad", "1.0.0", "1,050", "68F"} {
		t.Run(fmt.Sprintf("%q", text), func(t *testing.T) {
			_, err := ParseFloat("original gravity value", text)

			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
			assert.True(t, errors.Is(err, strconv.ErrSyntax))
			assert.Contains(t, err.Error(), "original gravity value")

			field, ok := FieldOf(err)
			assert.True(t, ok)
			assert.Equal(t, "original gravity value", field)
		})
	}
}

func TestFieldOfWrapped(t *testing.T) {
	t.Parallel()

	_, parseErr := ParseFloat("AA value", "x")
	wrapped := fmt.Errorf("calculating hops: %w", parseErr)

	field, ok := FieldOf(wrapped)
	assert.True(t, ok)
	assert.Equal(t, "AA value", field)

	_, ok = FieldOf(errors.New("something else"))
	assert.False(t, ok)
}

func TestInvalidArgumentErrorMessage(t *testing.T) {
	t.Parallel()

	err := &InvalidArgumentError{Field: "AAU value", Value: "ten"}
	assert.Equal(t, `invalid AAU value: "ten"`, err.Error())
}

func TestFormatFixed(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		value    float64
		places   int
		expected string
	}{
		{1.05, 3, "1.050"},
		{12.5, 2, "12.50"},
		{68, 1, "68.0"},
		{2, 2, "2.00"},
		{1234567.891, 2, "1234567.89"},
		{0.0000001, 3, "0.000"},
		{-4.25, 1, "-4.2"},
		{math.Inf(1), 2, "+Inf"},
		{math.NaN(), 2, "NaN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, FormatFixed(tc.value, tc.places))
	}
}
