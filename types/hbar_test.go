/*
 * Copyright (C) 2019-2025 Hedera Hashgraph, LLC
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *      http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHbar(t *testing.T) {
	assert.Equal(t, int64(100_000_000), NewHbar(1).Tinybar())
	assert.Equal(t, int64(-300_000_000), NewHbar(-3).Tinybar())
	assert.Equal(t, int64(50), HbarFromTinybar(50).Tinybar())
}

func TestHbarFrom(t *testing.T) {
	tests := []struct {
		amount   int64
		unit     HbarUnit
		expected int64
	}{
		{amount: 1, unit: HbarUnitTinybar, expected: 1},
		{amount: 1, unit: HbarUnitMicrobar, expected: 100},
		{amount: 1, unit: HbarUnitMillibar, expected: 100_000},
		{amount: 1, unit: HbarUnitHbar, expected: 100_000_000},
		{amount: 1, unit: HbarUnitKilobar, expected: 100_000_000_000},
		{amount: 1, unit: HbarUnitMegabar, expected: 100_000_000_000_000},
		{amount: 1, unit: HbarUnitGigabar, expected: 100_000_000_000_000_000},
		{amount: -2, unit: HbarUnitKilobar, expected: -200_000_000_000},
	}

	for _, tt := range tests {
		actual, err := HbarFrom(tt.amount, tt.unit)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, actual.Tinybar())
	}
}

func TestHbarFromOverflow(t *testing.T) {
	_, err := HbarFrom(1_000_000_000, HbarUnitGigabar)
	assert.Error(t, err)
}

func TestHbarFromString(t *testing.T) {
	tests := []struct {
		input    string
		expected int64
	}{
		{input: "1", expected: 100_000_000},
		{input: "-3", expected: -300_000_000},
		{input: "+5", expected: 500_000_000},
		{input: "1.5 mℏ", expected: 150_000},
		{input: "0.00000001 ℏ", expected: 1},
		{input: "1 tℏ", expected: 1},
		{input: "2 μℏ", expected: 200},
		{input: "1 kℏ", expected: 100_000_000_000},
		{input: "0.000001 Gℏ", expected: 100_000_000_000},
	}

	for _, tt := range tests {
		actual, err := HbarFromString(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, actual.Tinybar(), "input %q", tt.input)
	}
}

func TestHbarFromStringInvalid(t *testing.T) {
	for _, input := range []string{
		"",
		"abc",
		"1.5 xℏ",
		"1.5ℏ",
		"0.1 tℏ",
		"0.000000001",
		"1000000000000 Gℏ",
	} {
		_, err := HbarFromString(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestHbarFromFloat(t *testing.T) {
	// 0.05 has no exact binary representation; rounding must absorb that
	actual, err := HbarFromFloat(0.05, HbarUnitHbar)
	require.NoError(t, err)
	assert.Equal(t, int64(5_000_000), actual.Tinybar())

	actual, err = HbarFromFloat(-1.5, HbarUnitMillibar)
	require.NoError(t, err)
	assert.Equal(t, int64(-150_000), actual.Tinybar())

	_, err = HbarFromFloat(0.1, HbarUnitTinybar)
	assert.Error(t, err)

	_, err = HbarFromFloat(1e30, HbarUnitHbar)
	assert.Error(t, err)
}

func TestHbarTo(t *testing.T) {
	amount := NewHbar(1)
	assert.Equal(t, float64(1), amount.To(HbarUnitHbar))
	assert.Equal(t, float64(1000), amount.To(HbarUnitMillibar))
	assert.Equal(t, 0.001, amount.To(HbarUnitKilobar))
}

func TestHbarNegated(t *testing.T) {
	assert.Equal(t, int64(-5), HbarFromTinybar(5).Negated().Tinybar())
	assert.True(t, ZeroHbar.Negated().IsZero())
}

func TestHbarString(t *testing.T) {
	assert.Equal(t, "5 tℏ", HbarFromTinybar(5).String())
	assert.Equal(t, "-9999 tℏ", HbarFromTinybar(-9999).String())
	assert.Equal(t, "1.00000000 ℏ", NewHbar(1).String())
	assert.Equal(t, "-2.50000000 ℏ", HbarFromTinybar(-250_000_000).String())
}

func TestHbarBounds(t *testing.T) {
	assert.Equal(t, int64(5_000_000_000_000_000_000), MaxHbar.Tinybar())
	assert.Equal(t, int64(-5_000_000_000_000_000_000), MinHbar.Tinybar())
	assert.True(t, ZeroHbar.IsZero())
}

func TestHbarUnitSymbol(t *testing.T) {
	assert.Equal(t, "tℏ", HbarUnitTinybar.Symbol())
	assert.Equal(t, "ℏ", HbarUnitHbar.Symbol())
	assert.Equal(t, "Gℏ", HbarUnitGigabar.Symbol())
}
