package cpf

import (
	"regexp"
	"strconv"
)

var nonDigits = regexp.MustCompile(`\D`)

// Valid reports whether the CPF has 11 digits and consistent check digits.
// Formatting characters (dots, dash) are ignored. Repeated-digit sequences
// like 111.111.111-11 pass the arithmetic but are rejected, matching the
// Receita Federal rule.
func Valid(v string) bool {
	v = nonDigits.ReplaceAllString(v, "")

	if len(v) != 11 {
		return false
	}

	allSame := true
	for i := 1; i < len(v); i++ {
		if v[i] != v[0] {
			allSame = false
			break
		}
	}
	if allSame {
		return false
	}

	if !checkDigit(v, 9, 10) {
		return false
	}
	return checkDigit(v, 10, 11)
}

// checkDigit validates the digit at position pos using weights starting at
// startWeight and descending.
func checkDigit(v string, pos, startWeight int) bool {
	sum := 0
	for i := 0; i < pos; i++ {
		digit, _ := strconv.Atoi(string(v[i]))
		sum += digit * (startWeight - i)
	}
	remainder := sum % 11

	expected := 0
	if remainder >= 2 {
		expected = 11 - remainder
	}
	actual, _ := strconv.Atoi(string(v[pos]))
	return actual == expected
}
