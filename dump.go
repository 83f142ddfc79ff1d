package daylog

import (
	"fmt"
	"reflect"
)

// Dump renders v and emits it through the info pipeline, so the rendering
// lands in the daily file and on standard output like any other info line.
// Pointers are followed one level so the pointee is shown rather than an
// address; nil renders as <nil>.
func (s *Service) Dump(v interface{}) {
	if s == nil || !s.initialized.Load() {
		return
	}
	s.Info(render(v))
}

func render(v interface{}) string {
	if v == nil {
		return "<nil>"
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr {
		if rv.IsNil() {
			return "<nil>"
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Struct {
		return rv.Type().Name() + fmt.Sprintf("%+v", rv.Interface())
	}
	return fmt.Sprintf("%+v", rv.Interface())
}
