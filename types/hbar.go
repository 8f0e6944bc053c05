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
	"fmt"
	"math"
	"math/big"
	"regexp"

	"github.com/pkg/errors"
)

// HbarUnit is a denomination of the network currency, expressed as the number
// of tinybars per unit.
type HbarUnit int64

const (
	HbarUnitTinybar  HbarUnit = 1
	HbarUnitMicrobar HbarUnit = 100
	HbarUnitMillibar HbarUnit = 100_000
	HbarUnitHbar     HbarUnit = 100_000_000
	HbarUnitKilobar  HbarUnit = 100_000_000_000
	HbarUnitMegabar  HbarUnit = 100_000_000_000_000
	HbarUnitGigabar  HbarUnit = 100_000_000_000_000_000
)

func (u HbarUnit) Symbol() string {
	switch u {
	case HbarUnitTinybar:
		return "tℏ"
	case HbarUnitMicrobar:
		return "μℏ"
	case HbarUnitMillibar:
		return "mℏ"
	case HbarUnitHbar:
		return "ℏ"
	case HbarUnitKilobar:
		return "kℏ"
	case HbarUnitMegabar:
		return "Mℏ"
	case HbarUnitGigabar:
		return "Gℏ"
	}
	return "?"
}

// Hbar is an amount of the network currency, stored canonically in tinybars.
// All conversions are exact integer scalings of the tinybar.
type Hbar struct {
	tinybar int64
}

var (
	// MaxHbar and MinHbar bound the network's total currency supply.
	MaxHbar  = Hbar{tinybar: 50_000_000_000 * int64(HbarUnitHbar)}
	MinHbar  = Hbar{tinybar: -50_000_000_000 * int64(HbarUnitHbar)}
	ZeroHbar = Hbar{}

	hbarPattern = regexp.MustCompile(`^([+-]?\d+(?:\.\d+)?)(?: (tℏ|μℏ|mℏ|ℏ|kℏ|Mℏ|Gℏ))?$`)
	unitBySymbol = map[string]HbarUnit{
		"tℏ": HbarUnitTinybar,
		"μℏ": HbarUnitMicrobar,
		"mℏ": HbarUnitMillibar,
		"ℏ":  HbarUnitHbar,
		"kℏ": HbarUnitKilobar,
		"Mℏ": HbarUnitMegabar,
		"Gℏ": HbarUnitGigabar,
	}
)

// NewHbar returns the amount of whole hbars.
func NewHbar(hbar int64) Hbar {
	return Hbar{tinybar: hbar * int64(HbarUnitHbar)}
}

// HbarFromTinybar returns the amount in the minor unit directly.
func HbarFromTinybar(tinybar int64) Hbar {
	return Hbar{tinybar: tinybar}
}

// HbarFrom scales an integer amount of the given unit to tinybars, rejecting
// amounts that overflow the minor unit's range.
func HbarFrom(amount int64, unit HbarUnit) (Hbar, error) {
	tinybar := amount * int64(unit)
	if amount != 0 && tinybar/amount != int64(unit) {
		return Hbar{}, errors.Errorf("%d %s overflows the tinybar range", amount, unit.Symbol())
	}
	return Hbar{tinybar: tinybar}, nil
}

// HbarFromString parses forms like "1", "-3", "1.5 mℏ". The value scaled to
// tinybars must be a whole number of tinybars; a bare number is whole hbars.
func HbarFromString(s string) (Hbar, error) {
	match := hbarPattern.FindStringSubmatch(s)
	if match == nil {
		return Hbar{}, errors.Errorf("invalid hbar format: %q", s)
	}

	unit := HbarUnitHbar
	if match[2] != "" {
		unit = unitBySymbol[match[2]]
	}

	value, ok := new(big.Rat).SetString(match[1])
	if !ok {
		return Hbar{}, errors.Errorf("invalid hbar format: %q", s)
	}
	return hbarFromRat(value, unit)
}

// HbarFromFloat scales a possibly fractional amount of the given unit,
// rejecting results that are not a whole number of tinybars. The check allows
// for float representation error, so 0.05 hbar is five million tinybars, not
// an error.
func HbarFromFloat(amount float64, unit HbarUnit) (Hbar, error) {
	scaled := amount * float64(unit)
	rounded := math.Round(scaled)
	if math.IsNaN(scaled) || math.IsInf(scaled, 0) ||
		rounded > float64(math.MaxInt64) || rounded < float64(math.MinInt64) {
		return Hbar{}, errors.Errorf("amount overflows the tinybar range")
	}
	if math.Abs(scaled-rounded) > 1e-6 {
		return Hbar{}, errors.Errorf("fractional tinybar value not allowed: %f %s", scaled, HbarUnitTinybar.Symbol())
	}
	return Hbar{tinybar: int64(rounded)}, nil
}

func hbarFromRat(value *big.Rat, unit HbarUnit) (Hbar, error) {
	value = new(big.Rat).Mul(value, new(big.Rat).SetInt64(int64(unit)))
	if !value.IsInt() {
		return Hbar{}, errors.Errorf("fractional tinybar value not allowed: %s %s", value.FloatString(9), HbarUnitTinybar.Symbol())
	}
	if !value.Num().IsInt64() {
		return Hbar{}, errors.Errorf("amount overflows the tinybar range")
	}
	return Hbar{tinybar: value.Num().Int64()}, nil
}

// Tinybar returns the canonical minor-unit amount.
func (h Hbar) Tinybar() int64 {
	return h.tinybar
}

// To converts to the given unit; the result may be fractional.
func (h Hbar) To(unit HbarUnit) float64 {
	return float64(h.tinybar) / float64(unit)
}

func (h Hbar) Negated() Hbar {
	return Hbar{tinybar: -h.tinybar}
}

func (h Hbar) IsZero() bool {
	return h.tinybar == 0
}

// String renders small amounts in tinybars and larger amounts in hbars.
func (h Hbar) String() string {
	if h.tinybar > -10_000 && h.tinybar < 10_000 {
		return fmt.Sprintf("%d %s", h.tinybar, HbarUnitTinybar.Symbol())
	}
	return fmt.Sprintf("%s %s", new(big.Rat).SetFrac64(h.tinybar, int64(HbarUnitHbar)).FloatString(8), HbarUnitHbar.Symbol())
}
