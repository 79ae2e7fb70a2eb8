package rop

import (
	"reflect"
	"strings"
)

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	switch v := reflect.ValueOf(i); v.Kind() {
	case reflect.Ptr, reflect.Func:
		return v.IsNil()
	}
	return false
}

func GetErrors(err error) []error {
	if IsNil(err) {
		return []error{}
	}

	e, ok := err.(interface{ Unwrap() []error })
	if ok {
		return e.Unwrap()
	}

	return []error{err}
}

// Causes flattens err into human-readable lines, outermost context first.
// Joined errors contribute every branch in order.
func Causes(err error) []string {
	if IsNil(err) {
		return []string{}
	}

	if re, ok := err.(*Error); ok && re.kind == KindWrapped {
		return append([]string{re.msg}, Causes(re.cause)...)
	}
	if isJoined(err) {
		causes := make([]string, 0, 2)
		for _, e := range GetErrors(err) {
			causes = append(causes, Causes(e)...)
		}
		return causes
	}
	return []string{err.Error()}
}

// isJoined reports whether err renders as its branches separated by newlines,
// as errors.Join does. A multi-%w fmt.Errorf also unwraps to a slice but keeps
// its own format text, so it stays one line.
func isJoined(err error) bool {
	e, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return false
	}
	branches := e.Unwrap()
	lines := make([]string, 0, len(branches))
	for _, b := range branches {
		if b != nil {
			lines = append(lines, b.Error())
		}
	}
	return err.Error() == strings.Join(lines, "\n")
}
