package validation

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	// PinLength is the number of digits in a card PIN
	PinLength = 4

	// MoneyScale is the number of decimal places money amounts may carry
	MoneyScale = 2
)

var (
	pinRegex           = regexp.MustCompile(`^\d{4}$`)
	accountNumberRegex = regexp.MustCompile(`^[0-9A-Za-z-]+$`)
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	// decimal.Decimal is a struct; validate its canonical string form instead
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			return d.String()
		}
		return nil
	}, decimal.Decimal{})

	_ = v.RegisterValidation("pin", validatePin)
	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("positive_money", validatePositiveMoney)
	_ = v.RegisterValidation("account_number", validateAccountNumber)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Struct validates a struct using its validate tags
func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// IsValidPin reports whether pin is exactly four ASCII digits
func IsValidPin(pin string) bool {
	return pinRegex.MatchString(pin)
}

// IsStrongPin rejects sequential (1234, 4321) and repeated (1111) PINs
func IsStrongPin(pin string) bool {
	if !IsValidPin(pin) {
		return false
	}

	ascending, descending, same := true, true, true
	for i := 0; i < len(pin)-1; i++ {
		cur, next := int(pin[i]-'0'), int(pin[i+1]-'0')
		if next != cur+1 {
			ascending = false
		}
		if next != cur-1 {
			descending = false
		}
		if next != cur {
			same = false
		}
	}

	return !ascending && !descending && !same
}

// HasMoneyScale reports whether amount carries at most two decimal places
func HasMoneyScale(amount decimal.Decimal) bool {
	return amount.Equal(amount.Truncate(MoneyScale))
}

// IsValidAmount reports whether amount is a positive money value
func IsValidAmount(amount decimal.Decimal) bool {
	return amount.IsPositive() && HasMoneyScale(amount)
}

// Custom validation functions

func validatePin(fl validator.FieldLevel) bool {
	return IsValidPin(fl.Field().String())
}

// validateMoney accepts non-negative amounts with at most two decimal places
func validateMoney(fl validator.FieldLevel) bool {
	amount, ok := parseDecimalField(fl)
	if !ok {
		return false
	}
	return !amount.IsNegative() && HasMoneyScale(amount)
}

func validatePositiveMoney(fl validator.FieldLevel) bool {
	amount, ok := parseDecimalField(fl)
	if !ok {
		return false
	}
	return IsValidAmount(amount)
}

func validateAccountNumber(fl validator.FieldLevel) bool {
	return accountNumberRegex.MatchString(fl.Field().String())
}

func parseDecimalField(fl validator.FieldLevel) (decimal.Decimal, bool) {
	switch fl.Field().Kind() {
	case reflect.String:
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return decimal.Zero, false
		}
		return d, true
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(fl.Field().Float()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return decimal.NewFromInt(fl.Field().Int()), true
	default:
		return decimal.Zero, false
	}
}
