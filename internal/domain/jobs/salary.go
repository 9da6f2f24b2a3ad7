package jobs

import "github.com/shopspring/decimal"

// salaryCeiling límite de NUMERIC(10,2).
var salaryCeiling = decimal.NewFromInt(100_000_000)

// ValidSalaryRange ambos extremos son opcionales; si vienen deben ser no
// negativos, caber en la columna y cumplir min <= max.
func ValidSalaryRange(min, max decimal.NullDecimal) bool {
	for _, v := range []decimal.NullDecimal{min, max} {
		if v.Valid && (v.Decimal.IsNegative() || v.Decimal.GreaterThanOrEqual(salaryCeiling)) {
			return false
		}
	}
	if min.Valid && max.Valid && min.Decimal.GreaterThan(max.Decimal) {
		return false
	}
	return true
}
