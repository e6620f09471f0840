package auth

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	goerrors "github.com/goliatone/go-errors"
)

// Credentials is the login payload: a CPF identifier and a secret. The CPF
// arrives masked from input widgets (000.000.000-00); Normalized strips the
// mask before validation and submission.
type Credentials struct {
	CPF      string `json:"cpf"`
	Password string `json:"password"`
}

// Normalized returns a copy with the CPF reduced to its digits.
func (c Credentials) Normalized() Credentials {
	var digits strings.Builder
	for _, r := range c.CPF {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	c.CPF = digits.String()
	return c
}

// Validate checks the payload before it is sent to the identity provider.
func (c Credentials) Validate() error {
	if err := validation.ValidateStruct(&c,
		validation.Field(&c.CPF, validation.Required, validation.Length(11, 11), validation.By(validCPF)),
		validation.Field(&c.Password, validation.Required),
	); err != nil {
		return goerrors.Wrap(err, goerrors.CategoryValidation, "invalid credentials").
			WithCode(goerrors.CodeBadRequest)
	}
	return nil
}

// validCPF verifies the CPF check digits (modulo-11 over the first nine and
// ten digits respectively). Repeated-digit sequences pass the arithmetic but
// are not valid documents.
func validCPF(value any) error {
	cpf, _ := value.(string)
	if len(cpf) != 11 {
		return goerrors.New("cpf must have 11 digits", goerrors.CategoryValidation)
	}

	repeated := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			repeated = false
			break
		}
	}
	if repeated {
		return goerrors.New("cpf digits must not all repeat", goerrors.CategoryValidation)
	}

	digits := make([]int, 11)
	for i, r := range cpf {
		if r < '0' || r > '9' {
			return goerrors.New("cpf must contain only digits", goerrors.CategoryValidation)
		}
		digits[i] = int(r - '0')
	}

	if digits[9] != cpfCheckDigit(digits, 9) || digits[10] != cpfCheckDigit(digits, 10) {
		return goerrors.New("cpf check digits do not match", goerrors.CategoryValidation)
	}

	return nil
}

func cpfCheckDigit(digits []int, position int) int {
	sum := 0
	for i := 0; i < position; i++ {
		sum += digits[i] * (position + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
