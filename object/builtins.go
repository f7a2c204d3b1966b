// ==============================================================================================
// FILE: object/builtins.go
// ==============================================================================================
package object

import (
	"fmt"
)

// Builtins is the fixed, process-wide table of native functions. It is
// resolved by name only after the user's environment chain has been
// consulted (see Environment.Get).
var Builtins = []struct {
	Name    string
	Builtin *Builtin
}{
	{
		"len",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=1", len(args))
			}
			switch arg := args[0].(type) {
			case *Array:
				return &Integer{Value: int32(len(arg.Elements))}
			case *String:
				return &Integer{Value: int32(len(arg.Value))}
			default:
				return newBuiltinError("argument to `len` not supported, got %s", args[0].Type())
			}
		}},
	},
	{
		"first",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to `first` must be Array, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return &Null{}
			}
			return arr.Elements[0]
		}},
	},
	{
		"last",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to `last` must be Array, got %s", args[0].Type())
			}
			if len(arr.Elements) == 0 {
				return &Null{}
			}
			return arr.Elements[len(arr.Elements)-1]
		}},
	},
	{
		"rest",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 1 {
				return newBuiltinError("wrong number of arguments. got=%d, want=1", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to `rest` must be Array, got %s", args[0].Type())
			}
			length := len(arr.Elements)
			if length == 0 {
				return &Null{}
			}
			newElements := make([]Object, length-1)
			copy(newElements, arr.Elements[1:length])
			return &Array{Elements: newElements}
		}},
	},
	{
		"push",
		&Builtin{Fn: func(args ...Object) Object {
			if len(args) != 2 {
				return newBuiltinError("wrong number of arguments. got=%d, want=2", len(args))
			}
			arr, ok := args[0].(*Array)
			if !ok {
				return newBuiltinError("argument to `push` must be Array, got %s", args[0].Type())
			}
			length := len(arr.Elements)

			newElements := make([]Object, length+1)
			copy(newElements, arr.Elements)
			newElements[length] = args[1]

			return &Array{Elements: newElements}
		}},
	},
	{
		"puts",
		&Builtin{Fn: func(args ...Object) Object {
			for _, arg := range args {
				fmt.Println(arg.Inspect())
			}
			return &Null{}
		}},
	},
}

// GetBuiltin is a helper to find a builtin function by name.
func GetBuiltin(name string) (Object, bool) {
	for _, def := range Builtins {
		if def.Name == name {
			return def.Builtin, true
		}
	}
	return nil, false
}

// newBuiltinError constructs an *Error inside the object package.
func newBuiltinError(format string, a ...interface{}) *Error {
	return &Error{Message: fmt.Sprintf(format, a...)}
}
