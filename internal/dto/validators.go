package dto

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// RegisterValidators installs the decimal validation tags on gin's validator:
//
//	dgt=0      the decimal must be strictly greater than the parameter
//	dgte=0     the decimal must be greater than or equal to the parameter
//	dscale=16  at most that many fractional digits, ignoring trailing zeros
//
// Decimals are presented to the validator as their string form so that
// "required" treats a missing amount as empty.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	return registerDecimalValidators(v)
}

func registerDecimalValidators(v *validator.Validate) error {
	v.RegisterCustomTypeFunc(decimalTypeFunc, decimal.Decimal{}, decimal.NullDecimal{})
	if err := v.RegisterValidation("dgt", decimalCompare(func(cmp int) bool { return cmp > 0 })); err != nil {
		return err
	}
	if err := v.RegisterValidation("dgte", decimalCompare(func(cmp int) bool { return cmp >= 0 })); err != nil {
		return err
	}
	return v.RegisterValidation("dscale", decimalScale)
}

func decimalTypeFunc(field reflect.Value) any {
	switch d := field.Interface().(type) {
	case decimal.Decimal:
		return d.String()
	case decimal.NullDecimal:
		if !d.Valid {
			return ""
		}
		return d.Decimal.String()
	}
	return nil
}

func decimalScale(fl validator.FieldLevel) bool {
	value, err := decimal.NewFromString(fl.Field().String())
	if err != nil {
		return false
	}
	places, err := strconv.ParseInt(fl.Param(), 10, 32)
	if err != nil {
		return false
	}
	return value.Equal(value.Truncate(int32(places)))
}

func decimalCompare(accept func(cmp int) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		value, err := decimal.NewFromString(fl.Field().String())
		if err != nil {
			return false
		}
		bound, err := decimal.NewFromString(fl.Param())
		if err != nil {
			return false
		}
		return accept(value.Cmp(bound))
	}
}
