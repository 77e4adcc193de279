package model

import (
	"regexp"
	"unicode"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	nameRegex   = regexp.MustCompile(`^[A-Za-z][A-Za-z ]*$`)
	mobileRegex = regexp.MustCompile(`^0\d{9}$`)
)

// RegisterValidators installs the domain validation rules on gin's
// binding engine. Call once at startup before serving requests.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}

	if err := v.RegisterValidation("person_name", validName); err != nil {
		return err
	}
	if err := v.RegisterValidation("au_mobile", validMobile); err != nil {
		return err
	}
	if err := v.RegisterValidation("password_complexity", validPassword); err != nil {
		return err
	}
	return v.RegisterValidation("speciality", validSpeciality)
}

func validName(fl validator.FieldLevel) bool {
	return nameRegex.MatchString(fl.Field().String())
}

// Mobile numbers must begin with 0 and contain exactly 10 digits.
func validMobile(fl validator.FieldLevel) bool {
	return mobileRegex.MatchString(fl.Field().String())
}

// Passwords need at least 8 alphanumeric characters including a lower
// case letter, an upper case letter and a digit.
func validPassword(fl validator.FieldLevel) bool {
	password := fl.Field().String()
	if len(password) < 8 {
		return false
	}

	var hasLower, hasUpper, hasDigit bool
	for _, c := range password {
		switch {
		case unicode.IsLower(c):
			hasLower = true
		case unicode.IsUpper(c):
			hasUpper = true
		case unicode.IsDigit(c):
			hasDigit = true
		default:
			return false
		}
	}
	return hasLower && hasUpper && hasDigit
}

func validSpeciality(fl validator.FieldLevel) bool {
	switch Speciality(fl.Field().String()) {
	case SpecialityGeneral, SpecialityOrthopaedic, SpecialityCardiothoracic, SpecialityNeurosurgeon:
		return true
	default:
		return false
	}
}
