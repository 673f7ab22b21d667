package form

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/goliatone/go-epiform/pkg/model"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func presenceValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "" || name == "-" {
				return fld.Name
			}
			return name
		})
	})
	return validate
}

// MissingEmployeeFields lists, in on-screen order, the required
// identification fields that are still blank. Whitespace-only values count as
// blank. The check is advisory: nothing in the form refuses to proceed.
func (f *Form) MissingEmployeeFields() []model.EmployeeField {
	info := f.employee
	for _, field := range model.EmployeeFields {
		info.Set(field, strings.TrimSpace(info.Get(field)))
	}

	err := presenceValidator().Struct(info)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	missing := make(map[model.EmployeeField]struct{}, len(verrs))
	for _, fe := range verrs {
		missing[model.EmployeeField(fe.Field())] = struct{}{}
	}

	out := make([]model.EmployeeField, 0, len(missing))
	for _, field := range model.EmployeeFields {
		if _, ok := missing[field]; ok {
			out = append(out, field)
		}
	}
	return out
}
