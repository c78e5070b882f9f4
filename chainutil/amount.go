// Copyright (c) 2013, 2014 The btcsuite developers
// Copyright (c) 2025 The Embercoin developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chainutil

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// AmountUnit describes a method of converting an Amount to something
// other than the base unit of an embercoin.  The value of the AmountUnit
// is the exponent component of the decadic multiple to convert from
// an amount in embercoin to an amount counted in units.
type AmountUnit int

// These constants define various units used when describing an embercoin
// monetary amount.
const (
	AmountMegaEMB  AmountUnit = 6
	AmountKiloEMB  AmountUnit = 3
	AmountEMB      AmountUnit = 0
	AmountMilliEMB AmountUnit = -3
	AmountMicroEMB AmountUnit = -6
	AmountSpark    AmountUnit = -8
)

// String returns the unit as a string.  For recognized units, the SI
// prefix is used, or "Spark" for the base unit.  For all unrecognized
// units, "1eN EMB" is returned, where N is the AmountUnit.
func (u AmountUnit) String() string {
	switch u {
	case AmountMegaEMB:
		return "MEMB"
	case AmountKiloEMB:
		return "kEMB"
	case AmountEMB:
		return "EMB"
	case AmountMilliEMB:
		return "mEMB"
	case AmountMicroEMB:
		return "μEMB"
	case AmountSpark:
		return "Spark"
	default:
		return "1e" + strconv.FormatInt(int64(u), 10) + " EMB"
	}
}

// Amount represents the base embercoin monetary unit (colloquially referred
// to as a `Spark').  A single Amount is equal to 1e-8 of an embercoin.
type Amount int64

// round converts a floating point number, which may or may not be representable
// as an integer, to the Amount integer type by rounding to the nearest integer.
// This is performed by adding or subtracting 0.5 depending on the sign, and
// relying on integer truncation to round the value to the nearest Amount.
func round(f float64) Amount {
	if f < 0 {
		return Amount(f - 0.5)
	}
	return Amount(f + 0.5)
}

// NewAmount creates an Amount from a floating point value representing
// some value in embercoin.  NewAmount errors if f is NaN or +-Infinity,
// but does not check that the amount is within the total amount of
// embercoin producible as f may not refer to an amount at a single moment
// in time.
//
// NewAmount is for specifically for converting EMB to Spark.  For creating
// a new Amount with an int64 value which denotes a quantity of Spark, do a
// simple type conversion from type int64 to Amount.
func NewAmount(f float64) (Amount, error) {
	// The amount is only considered invalid if it cannot be represented
	// as an integer type.  This may happen if f is NaN or +-Infinity.
	switch {
	case math.IsNaN(f):
		fallthrough
	case math.IsInf(f, 1):
		fallthrough
	case math.IsInf(f, -1):
		return 0, errors.New("invalid embercoin amount")
	}

	return round(f * SparkPerEmber), nil
}

// ToUnit converts a monetary amount counted in embercoin base units to a
// floating point value representing an amount of embercoin.
func (a Amount) ToUnit(u AmountUnit) float64 {
	return float64(a) / math.Pow10(int(u+8))
}

// ToEMB is the equivalent of calling ToUnit with AmountEMB.
func (a Amount) ToEMB() float64 {
	return a.ToUnit(AmountEMB)
}

// Format formats a monetary amount counted in embercoin base units as a
// string for a given unit.  The conversion will succeed for any unit,
// however, known units will be formatted with an appended label describing
// the units with SI notation, or "Spark" for the base unit.
func (a Amount) Format(u AmountUnit) string {
	units := " " + u.String()
	formatted := strconv.FormatFloat(a.ToUnit(u), 'f', -int(u+8), 64)

	// When formatting full EMB, add trailing zeroes for numbers
	// with decimal point to ease reading of spark amount.
	if u == AmountEMB {
		if strings.Contains(formatted, ".") {
			return fmt.Sprintf("%.8f%s", a.ToUnit(u), units)
		}
	}
	return formatted + units
}

// String is the equivalent of calling Format with AmountEMB.
func (a Amount) String() string {
	return a.Format(AmountEMB)
}

// MulF64 multiplies an Amount by a floating point value.  While this is not
// an operation that must typically be done by a full node or wallet, it is
// useful for services that build on top of embercoin (for example,
// calculating a fee by multiplying by a percentage).
func (a Amount) MulF64(f float64) Amount {
	return round(float64(a) * f)
}
