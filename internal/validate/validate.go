// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// package validate holds the local form checks run before any network call.
// Helpers return an i18n message ID on failure so the UI layers render the
// error in the active language.
package validate

import (
	"regexp"
	"strings"
)

var (
	nonDigits      = regexp.MustCompile(`[^0-9]`)
	matriculaShape = regexp.MustCompile(`^[A-Z]{2,4}-?[0-9]{4,8}$`)
	emailShape     = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// CPF checks the structural validity of a CPF: 11 digits, not all equal,
// both check digits correct. Formatting (dots, dash) is tolerated.
func CPF(raw string) bool {
	digits := nonDigits.ReplaceAllString(raw, "")
	if len(digits) != 11 {
		return false
	}
	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	toInt := func(b byte) int { return int(b - '0') }

	// first check digit over positions 0..8 with weights 10..2
	sum := 0
	for i := 0; i < 9; i++ {
		sum += toInt(digits[i]) * (10 - i)
	}
	d1 := (sum * 10) % 11
	if d1 == 10 {
		d1 = 0
	}
	if d1 != toInt(digits[9]) {
		return false
	}

	// second check digit over positions 0..9 with weights 11..2
	sum = 0
	for i := 0; i < 10; i++ {
		sum += toInt(digits[i]) * (11 - i)
	}
	d2 := (sum * 10) % 11
	if d2 == 10 {
		d2 = 0
	}
	return d2 == toInt(digits[10])
}

// Matricula checks the shape of an officer registration number, e.g.
// "PM-12345".
func Matricula(raw string) bool {
	return matriculaShape.MatchString(strings.ToUpper(strings.TrimSpace(raw)))
}

// Email checks the rough shape of an e-mail address.
func Email(raw string) bool {
	return emailShape.MatchString(strings.TrimSpace(raw))
}

// CitizenLogin validates the citizen login form. It returns the i18n
// message ID of the first failing check, or "" when the form is valid.
func CitizenLogin(cpf, password string) string {
	if strings.TrimSpace(cpf) == "" {
		return "login.error.document_required"
	}
	if !CPF(cpf) {
		return "login.error.invalid_cpf"
	}
	if password == "" {
		return "login.error.password_required"
	}
	return ""
}

// OfficerLogin validates the officer login form.
func OfficerLogin(matricula, password string) string {
	if strings.TrimSpace(matricula) == "" {
		return "login.error.matricula_required"
	}
	if !Matricula(matricula) {
		return "login.error.invalid_matricula"
	}
	if password == "" {
		return "login.error.password_required"
	}
	return ""
}

// Registration validates the citizen sign-up form.
func Registration(name, cpf, email, password string) string {
	if strings.TrimSpace(name) == "" {
		return "register.error.name_required"
	}
	if !CPF(cpf) {
		return "login.error.invalid_cpf"
	}
	if !Email(email) {
		return "register.error.email_invalid"
	}
	if password == "" {
		return "login.error.password_required"
	}
	return ""
}
