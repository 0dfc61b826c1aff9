package frozen

import "reflect"

// scalar_reflect.go isolates the one reflect.ValueOf call needed to recover
// the underlying kind of a named integer type (type UserID int32, and
// similar). Every other file in this package is reflect-free.

func reflectValueOf(v any) reflect.Value { return reflect.ValueOf(v) }

func reflectKindIndex(rv reflect.Value) uint64 {
	switch rv.Kind() {
	case reflect.Int:
		return flipSign64(rv.Int())
	case reflect.Int8:
		return flipSign8(int8(rv.Int()))
	case reflect.Int16:
		return flipSign16(int16(rv.Int()))
	case reflect.Int32:
		return flipSign32(int32(rv.Int()))
	case reflect.Int64:
		return flipSign64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	default:
		panic("frozen: unsupported integer kind " + rv.Kind().String())
	}
}
