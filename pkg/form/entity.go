package form

import (
	"reflect"
	"strings"

	"github.com/goliatone/go-forms/internal/coerce"
)

// entityField reads the struct field bound to name. The form struct tag
// wins; untagged fields match their name case-insensitively.
func entityField(entity any, name string) (any, bool) {
	rv, ok := structValue(entity)
	if !ok {
		return nil, false
	}

	field, ok := findField(rv, name)
	if !ok {
		return nil, false
	}
	return field.Interface(), true
}

// setEntityField writes value into the struct field bound to name. The
// entity must be a pointer to struct for the write to land.
func setEntityField(entity any, name string, value any) bool {
	rv, ok := structValue(entity)
	if !ok {
		return false
	}

	field, ok := findField(rv, name)
	if !ok || !field.CanSet() {
		return false
	}
	return assign(field, value)
}

func structValue(entity any) (reflect.Value, bool) {
	rv := reflect.ValueOf(entity)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}
	return rv, true
}

func findField(rv reflect.Value, name string) (reflect.Value, bool) {
	rt := rv.Type()
	nameMatch := -1
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tagName, _, _ := strings.Cut(sf.Tag.Get("form"), ",")
		if tagName == "-" {
			continue
		}
		if tagName != "" {
			if tagName == name {
				return rv.Field(i), true
			}
			continue
		}
		if nameMatch < 0 && strings.EqualFold(sf.Name, name) {
			nameMatch = i
		}
	}
	if nameMatch >= 0 {
		return rv.Field(nameMatch), true
	}
	return reflect.Value{}, false
}

// assign converts loosely typed submissions into the field's kind. Direct
// assignment wins; strings, booleans and numbers coerce.
func assign(field reflect.Value, value any) bool {
	if value == nil {
		field.Set(reflect.Zero(field.Type()))
		return true
	}

	rv := reflect.ValueOf(value)
	if rv.Type().AssignableTo(field.Type()) {
		field.Set(rv)
		return true
	}

	switch field.Kind() {
	case reflect.String:
		field.SetString(coerce.ToString(value))
		return true
	case reflect.Bool:
		field.SetBool(coerce.Truthy(value))
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n := int64(coerce.ToFloat64(value))
		if field.OverflowInt(n) {
			return false
		}
		field.SetInt(n)
		return true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		fv := coerce.ToFloat64(value)
		if fv < 0 {
			return false
		}
		n := uint64(fv)
		if field.OverflowUint(n) {
			return false
		}
		field.SetUint(n)
		return true
	case reflect.Float32, reflect.Float64:
		fv := coerce.ToFloat64(value)
		if field.OverflowFloat(fv) {
			return false
		}
		field.SetFloat(fv)
		return true
	}
	return false
}
