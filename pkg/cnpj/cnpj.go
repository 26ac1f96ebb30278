// Package cnpj valida y normaliza el CNPJ (Cadastro Nacional da Pessoa Jurídica).
package cnpj

import (
	"errors"
	"fmt"
	"unicode"
)

// pesos del módulo 11 para el primer y segundo dígito verificador.
var (
	firstWeights  = [12]int{5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
	secondWeights = [13]int{6, 5, 4, 3, 2, 9, 8, 7, 6, 5, 4, 3, 2}
)

// ErrFormat CNPJ sin 14 dígitos o con todos los dígitos iguales.
var ErrFormat = errors.New("cnpj: formato inválido")

// ErrCheckDigits dígitos verificadores no coinciden.
var ErrCheckDigits = errors.New("cnpj: dígitos verificadores inválidos")

// Normalize devuelve solo los dígitos. "12.345.678/0001-95" → "12345678000195".
func Normalize(s string) string {
	out := make([]byte, 0, 14)
	for _, r := range s {
		if unicode.IsDigit(r) && r < 128 {
			out = append(out, byte(r))
		}
	}
	return string(out)
}

// ValidateFormat comprueba 14 dígitos y que no sean todos iguales.
func ValidateFormat(s string) error {
	digits := Normalize(s)
	if len(digits) != 14 {
		return fmt.Errorf("%w: se esperaban 14 dígitos, se encontraron %d", ErrFormat, len(digits))
	}
	same := true
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			same = false
			break
		}
	}
	if same {
		return fmt.Errorf("%w: dígitos repetidos", ErrFormat)
	}
	return nil
}

// Validate comprueba formato y los dos dígitos verificadores (módulo 11).
func Validate(s string) error {
	if err := ValidateFormat(s); err != nil {
		return err
	}
	digits := Normalize(s)
	first, second, err := ComputeCheckDigits(digits[:12])
	if err != nil {
		return err
	}
	if digits[12] != first || digits[13] != second {
		return fmt.Errorf("%w: esperado %c%c, recibido %s", ErrCheckDigits, first, second, digits[12:])
	}
	return nil
}

// ComputeCheckDigits calcula los dos dígitos verificadores para la base de 12 dígitos.
func ComputeCheckDigits(base string) (byte, byte, error) {
	digits := Normalize(base)
	if len(digits) != 12 {
		return 0, 0, fmt.Errorf("%w: la base debe tener 12 dígitos, se encontraron %d", ErrFormat, len(digits))
	}
	first := checkDigit(digits, firstWeights[:])
	second := checkDigit(digits+string(first), secondWeights[:])
	return first, second, nil
}

func checkDigit(digits string, weights []int) byte {
	var sum int
	for i, w := range weights {
		sum += int(digits[i]-'0') * w
	}
	r := sum % 11
	if r < 2 {
		return '0'
	}
	return byte('0' + (11 - r))
}

// Format aplica la máscara 00.000.000/0000-00. Devuelve la entrada si no tiene 14 dígitos.
func Format(s string) string {
	d := Normalize(s)
	if len(d) != 14 {
		return s
	}
	return d[0:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:14]
}
