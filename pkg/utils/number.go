package utils

import "math"

// RoundWithTwoDecimalPlace arredonda um valor para duas casas decimais
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// RoundWithOneDecimalPlace arredonda um valor para uma casa decimal
func RoundWithOneDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*10) / 10
}

// RoundCents arredonda um valor fracionário para o centavo inteiro mais próximo
func RoundCents(f float64) int64 {
	return int64(math.Round(f))
}

// DivideCents divide dois valores em centavos arredondando para o centavo mais próximo.
// Denominador não positivo retorna 0 em vez de erro, conforme o contrato de totalidade
// das funções de cálculo.
func DivideCents(numerator, denominator int64) int64 {
	if denominator <= 0 {
		return 0
	}

	return RoundCents(float64(numerator) / float64(denominator))
}

// Clamp limita um valor ao intervalo [min, max]
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}

	if value > max {
		return max
	}

	return value
}
