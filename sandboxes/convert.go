package sandboxes

import (
	"fmt"
	"reflect"

	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

// ToStarlark converts a seed value for the namespace. The
// func(string) (string, error) case is handled directly rather than
// through starlarkutil so the Go error comes back as-is; the recursion
// hook relies on that to carry its abort tag through the interpreter.
func ToStarlark(name string, value any) starlark.Value {
	switch value := value.(type) {

	case nil:
		return starlark.None

	case bool:
		return starlark.Bool(value)

	case int:
		return starlark.MakeInt(value)

	case int64:
		return starlark.MakeInt64(value)

	case float64:
		return starlark.Float(value)

	case string:
		return starlark.String(value)

	case []any:
		elems := make([]starlark.Value, 0, len(value))
		for i, elem := range value {
			elems = append(elems, ToStarlark(fmt.Sprintf("%s[%d]", name, i), elem))
		}
		return starlark.NewList(elems)

	case map[string]any:
		dict := starlark.NewDict(len(value))
		for key, elem := range value {
			dict.SetKey(starlark.String(key), ToStarlark(key, elem))
		}
		return dict

	case func(string) (string, error):
		return starlark.NewBuiltin(name, func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var arg string
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &arg); err != nil {
				return nil, err
			}
			ret, err := value(arg)
			if err != nil {
				return nil, err
			}
			return starlark.String(ret), nil
		})

	}

	if reflect.ValueOf(value).Kind() == reflect.Func {
		return starlarkutil.MakeFunc(name, value)
	}

	panic(fmt.Errorf("unsupported seed value: %T", value))
}
