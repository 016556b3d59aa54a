package gomap

import (
	"reflect"
	"strings"
	"sync"
)

type fieldInfo struct {
	index     int
	name      string // wire name: json tag name, else Go field name
	goName    string
	omitEmpty bool
}

var fieldCache sync.Map // reflect.Type -> []fieldInfo

// fieldsOf returns the encodable fields of a struct type in declaration
// order, honoring `json:"name,omitempty"` tags.  Unexported fields and
// fields tagged "-" are excluded.
func fieldsOf(t reflect.Type) []fieldInfo {
	if cached, ok := fieldCache.Load(t); ok {
		return cached.([]fieldInfo)
	}
	var fields []fieldInfo
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() {
			continue
		}
		name := sf.Name
		omitEmpty := false
		if tag, ok := sf.Tag.Lookup("json"); ok {
			tagName, rest, _ := strings.Cut(tag, ",")
			if tagName == "-" && rest == "" {
				continue
			}
			if tagName != "" {
				name = tagName
			}
			for rest != "" {
				var opt string
				opt, rest, _ = strings.Cut(rest, ",")
				if opt == "omitempty" {
					omitEmpty = true
				}
			}
		}
		fields = append(fields, fieldInfo{
			index:     i,
			name:      name,
			goName:    sf.Name,
			omitEmpty: omitEmpty,
		})
	}
	fieldCache.Store(t, fields)
	return fields
}

// matchField finds the struct field for an object key: first by wire
// name, then by Go name, then by sanitized forms, all case-insensitive.
func matchField(fields []fieldInfo, key string) (fieldInfo, bool) {
	for _, f := range fields {
		if strings.EqualFold(f.name, key) {
			return f, true
		}
	}
	for _, f := range fields {
		if strings.EqualFold(f.goName, key) {
			return f, true
		}
	}
	sk := SanitizeName(key)
	for _, f := range fields {
		if strings.EqualFold(SanitizeName(f.name), sk) ||
			strings.EqualFold(SanitizeName(f.goName), sk) {
			return f, true
		}
	}
	return fieldInfo{}, false
}
