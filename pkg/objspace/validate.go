package objspace

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Report wire names so errors read "edge_length", not "EdgeLength".
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	// NaN and ±Inf survive TOML but not JSON, and no board has infinite edges.
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field()
		if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
			return false
		}
		x := f.Float()
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	})
	return v
}

// Validate checks the semantic constraints that the structural decode cannot:
// positive board dimensions, marker_length below edge_length, exactly three
// non-negative variances, and a descriptor the detector can be paired with.
func Validate(cfg ObjectSpaceConfig) error {
	const prefix = "camera"

	detector := cfg.Camera.Detector
	if detector == nil {
		return schemaErr(MissingField, prefix+".detector", "")
	}
	descriptor := cfg.Camera.Descriptor
	if descriptor == nil {
		return schemaErr(MissingField, prefix+".descriptor", "")
	}

	switch d := detector.(type) {
	case Checkerboard:
		if err := validateStruct(prefix+".detector", d); err != nil {
			return err
		}
	case Charuco:
		if err := validateStruct(prefix+".detector", d); err != nil {
			return err
		}
	default:
		return schemaErr(UnknownVariant, prefix+".detector.type", "unsupported detector %T", detector)
	}

	if !Supports(detector, descriptor.Kind()) {
		return schemaErr(InvalidValue, prefix+".descriptor.type",
			"%s cannot describe a %s detector; use one of %v",
			descriptor.Kind(), detector.Kind(), detector.Descriptors())
	}
	return nil
}

func validateStruct(path string, s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("validate %s: %w", path, err)
	}
	fe := fieldErrs[0]
	return &SchemaError{
		Kind:   InvalidValue,
		Path:   path + "." + fe.Field(),
		Detail: constraint(s, fe),
	}
}

func constraint(s any, fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("must be a finite number, got %v", fe.Value())
	case "gt":
		return fmt.Sprintf("must be greater than %s, got %v", fe.Param(), fe.Value())
	case "gte":
		return fmt.Sprintf("must not be negative, got %v", fe.Value())
	case "len":
		return fmt.Sprintf("must have exactly %s elements (X/Y/Z), got %d", fe.Param(), reflect.ValueOf(fe.Value()).Len())
	case "ltfield":
		return fmt.Sprintf("must be less than %s, got %v", wireName(s, fe.Param()), fe.Value())
	}
	return fmt.Sprintf("failed %q constraint", fe.Tag())
}

func wireName(s any, field string) string {
	f, ok := reflect.TypeOf(s).FieldByName(field)
	if !ok {
		return field
	}
	name, _, _ := strings.Cut(f.Tag.Get("toml"), ",")
	return name
}
