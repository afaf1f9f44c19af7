package utils

import "github.com/shopspring/decimal"

// RoundWithTwoDecimalPlace arredonda valores monetários, com meio centavo para longe do zero
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return decimal.NewFromFloat(f).Round(2).InexactFloat64()
}

// Percentage retorna part/total em porcentagem; total zero resulta em zero
func Percentage(part, total float64) float64 {
	if total == 0 {
		return 0
	}
	return part / total * 100
}
