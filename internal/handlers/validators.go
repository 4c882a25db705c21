package handlers

import (
	"reflect"
	"sync"

	"github.com/SscSPs/repair_shop_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var registerValidatorsOnce sync.Once

// RegisterValidators installs the custom binding rules on gin's validator:
// "paymethod", "orderstatus" and numeric comparisons on decimal.Decimal.
func RegisterValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterCustomTypeFunc(decimalValue, decimal.Decimal{})
		_ = v.RegisterValidation("paymethod", func(fl validator.FieldLevel) bool {
			return domain.PaymentMethod(fl.Field().String()).IsValid()
		})
		_ = v.RegisterValidation("orderstatus", func(fl validator.FieldLevel) bool {
			return domain.OrderStatus(fl.Field().String()).IsValid()
		})
	})
}

// decimalValue exposes a decimal to validator rules as a float64.
func decimalValue(field reflect.Value) interface{} {
	if d, ok := field.Interface().(decimal.Decimal); ok {
		f, _ := d.Float64()
		return f
	}
	return nil
}
