// Package mask converts structs into loggable maps while hiding sensitive
// fields. Any field tagged `mask:"true"` is replaced by a placeholder, so
// values like password hashes never reach the log output.
package mask

import (
	"reflect"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

const placeholder = "*****"

// Struct converts v into an ordered map keyed by field tag names, masking
// every field tagged `mask:"true"`. Entries follow the struct declaration
// order, so serialized output stays stable across runs. Nested structs,
// pointers, slices and maps are converted recursively. Non-struct values are
// returned unchanged.
func Struct(v any) any {
	return maskValue(reflect.ValueOf(v))
}

func maskValue(val reflect.Value) any {
	if !val.IsValid() {
		return nil
	}

	switch val.Kind() {
	case reflect.Pointer, reflect.Interface:
		if val.IsNil() {
			return nil
		}
		return maskValue(val.Elem())

	case reflect.Struct:
		return maskStruct(val)

	case reflect.Slice, reflect.Array:
		out := make([]any, val.Len())
		for i := range val.Len() {
			out[i] = maskValue(val.Index(i))
		}
		return out

	case reflect.Map:
		out := make(map[string]any, val.Len())
		for _, key := range val.MapKeys() {
			out[keyString(key)] = maskValue(val.MapIndex(key))
		}
		return out

	default:
		return val.Interface()
	}
}

func maskStruct(val reflect.Value) *orderedmap.OrderedMap[string, any] {
	t := val.Type()
	out := orderedmap.New[string, any]()

	for i := range t.NumField() {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := fieldName(field)
		if name == "-" {
			continue
		}

		if strings.EqualFold(field.Tag.Get("mask"), "true") {
			out.Set(name, placeholder)
			continue
		}

		out.Set(name, maskValue(val.Field(i)))
	}

	return out
}

// fieldName resolves the serialized name of a struct field, preferring the
// json tag, then the yaml tag, then the Go field name.
func fieldName(field reflect.StructField) string {
	for _, key := range []string{"json", "yaml"} {
		tag := field.Tag.Get(key)
		if tag == "" {
			continue
		}
		if name := strings.Split(tag, ",")[0]; name != "" {
			return name
		}
	}
	return field.Name
}

func keyString(key reflect.Value) string {
	if key.Kind() == reflect.String {
		return key.String()
	}
	return key.Type().String()
}
