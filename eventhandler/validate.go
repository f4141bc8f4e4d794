// Package eventhandler validates the structural rules that apply to event
// handler functions before they are registered with an event bus.
//
// Validation failures are configuration errors: they are surfaced to
// registration and bootstrap reporting, never to runtime event processing.
package eventhandler

import (
	"context"
	"fmt"
	"reflect"
	"runtime"
)

var contextType = reflect.TypeOf((*context.Context)(nil)).Elem()
var errorType = reflect.TypeOf((*error)(nil)).Elem()

// UnsupportedHandlerError is returned when a function was registered as an
// event handler but does not conform to the rules that apply to handlers.
// It carries a reference to the violating function for diagnostics.
type UnsupportedHandlerError struct {
	Message     string
	HandlerName string
	HandlerType reflect.Type
}

// Error returns a descriptive message naming the violating handler.
func (e *UnsupportedHandlerError) Error() string {
	return fmt.Sprintf("unsupported event handler %s (%s): %s", e.HandlerName, e.HandlerType, e.Message)
}

// Validate checks whether the given function conforms to the structural
// rules for event handlers:
//
//   - it must be a function
//   - it takes one or two parameters; with two, the first must be a context.Context
//   - the final parameter is the event and must not be a context.Context
//   - it returns nothing or a single error
//
// A violation is reported as *UnsupportedHandlerError.
func Validate(handler any) error {
	handlerValue := reflect.ValueOf(handler)

	if !handlerValue.IsValid() || handlerValue.Kind() != reflect.Func {
		return violation(handlerValue, "handler must be a function")
	}

	handlerType := handlerValue.Type()

	switch handlerType.NumIn() {
	case 1:
		if handlerType.In(0).Implements(contextType) {
			return violation(handlerValue, "single parameter must be the event, not a context.Context")
		}

	case 2:
		if !handlerType.In(0).Implements(contextType) {
			return violation(handlerValue, "first of two parameters must be a context.Context")
		}

		if handlerType.In(1).Implements(contextType) {
			return violation(handlerValue, "second parameter must be the event, not a context.Context")
		}

	default:
		return violation(handlerValue, fmt.Sprintf("handler must take one or two parameters, takes %d", handlerType.NumIn()))
	}

	switch handlerType.NumOut() {
	case 0:
		// no return value is allowed

	case 1:
		if !handlerType.Out(0).Implements(errorType) {
			return violation(handlerValue, "single return value must be an error")
		}

	default:
		return violation(handlerValue, fmt.Sprintf("handler must return nothing or an error, returns %d values", handlerType.NumOut()))
	}

	return nil
}

func violation(handlerValue reflect.Value, message string) *UnsupportedHandlerError {
	name := "<not a function>"
	var handlerType reflect.Type

	if handlerValue.IsValid() {
		handlerType = handlerValue.Type()

		if handlerValue.Kind() == reflect.Func {
			if fn := runtime.FuncForPC(handlerValue.Pointer()); fn != nil {
				name = fn.Name()
			}
		}
	}

	return &UnsupportedHandlerError{
		Message:     message,
		HandlerName: name,
		HandlerType: handlerType,
	}
}
