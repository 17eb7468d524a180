package processor

import (
	"reflect"
)

func mergeReflect(t reflect.Type, base, overlay, out reflect.Value) {
	switch t.Kind() {
	case reflect.Struct:
		for _, f := range reflect.VisibleFields(t) {
			if !f.IsExported() || f.Anonymous {
				continue
			}
			mergeReflect(f.Type, base.FieldByIndex(f.Index), overlay.FieldByIndex(f.Index), out.FieldByIndex(f.Index))
		}
	case reflect.Pointer:
		if base.IsNil() {
			out.Set(overlay)
		} else if overlay.IsNil() {
			out.Set(base)
		} else {
			out.Set(reflect.New(t.Elem()))
			mergeReflect(t.Elem(), base.Elem(), overlay.Elem(), out.Elem())
		}
	default:
		if overlay.IsZero() {
			out.Set(base)
		} else {
			out.Set(overlay)
		}
	}
}

// Merge returns base with every non-zero field of overlay applied on top.
func Merge[T any](base, overlay T) T {
	var out T
	mergeReflect(reflect.TypeOf((*T)(nil)).Elem(), reflect.ValueOf(base), reflect.ValueOf(overlay), reflect.ValueOf(&out).Elem())
	return out
}
