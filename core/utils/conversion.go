package utils

import (
	"fmt"
	"reflect"
	"strconv"
)

// ToString converts various types to string for display.
// Nil values and nil pointers render as the empty string, floats drop a zero
// fractional part (rack position 12.0 -> "12") and pointers are dereferenced.
func ToString(val any) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case *string:
		if v == nil {
			return ""
		}
		return *v
	case []byte:
		return string(v)
	case int:
		return strconv.Itoa(v)
	case *int:
		if v == nil {
			return ""
		}
		return strconv.Itoa(*v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case *float64:
		if v == nil {
			return ""
		}
		return strconv.FormatFloat(*v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		if isNilPointer(v) && !hasPointerReceiver(v) {
			return ""
		}
		return v.String()
	default:
		if isNilPointer(v) {
			return ""
		}
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			return ToString(rv.Elem().Interface())
		}
		return fmt.Sprintf("%v", v)
	}
}

// Or returns val rendered with ToString, or fallback when that is empty.
func Or(val any, fallback string) string {
	if s := ToString(val); s != "" {
		return s
	}
	return fallback
}

func isNilPointer(val any) bool {
	rv := reflect.ValueOf(val)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// hasPointerReceiver reports whether the String method is declared on the
// pointer type, in which case it is safe to call on a nil pointer.
func hasPointerReceiver(val fmt.Stringer) bool {
	t := reflect.TypeOf(val)
	if t.Kind() != reflect.Pointer {
		return false
	}
	_, onValue := t.Elem().MethodByName("String")
	return !onValue
}
