package rlmconfigs

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"

	"github.com/reusee/dscope"
	"github.com/reusee/rlm/configs"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// StarlarkFork executes rlm.star config files and forks the scope with
// the configurable values their calls construct. Each configurable type
// is predeclared as a constructor named after the type, so a config file
// reads like:
//
//	DefaultModelName("groq/llama-3.3-70b-versatile")
//	MaxDepth(6)
//
// Files execute in order: /etc, user config dir, working directory.
// Later files win.
func StarlarkFork(scope dscope.Scope) (dscope.Scope, error) {
	var paths []string

	filenames := []string{
		"rlm.star",
		".rlm.star",
	}

	// system wide dir
	for _, filename := range filenames {
		path := filepath.Join("/etc", filename)
		if _, err := os.Stat(path); err == nil {
			paths = append(paths, path)
		}
	}

	// user config dir
	configDir, err := os.UserConfigDir()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(configDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	// working directory
	workingDir, err := os.Getwd()
	if err == nil {
		for _, filename := range filenames {
			path := filepath.Join(workingDir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return forkConfigFiles(scope, paths)
}

func forkConfigFiles(scope dscope.Scope, paths []string) (dscope.Scope, error) {
	values := make(map[reflect.Type]any)
	for _, path := range paths {
		if err := execConfigFile(scope, path, values); err != nil {
			return scope, err
		}
	}
	var defs []any
	for _, value := range values {
		defs = append(defs, value)
	}
	return scope.Fork(defs...), nil
}

func execConfigFile(scope dscope.Scope, path string, values map[reflect.Type]any) error {
	predeclared := make(starlark.StringDict)
	for t := range configs.ConfigurableTypes(scope) {
		predeclared[t.Name()] = newConfigurableBuiltin(t, values)
	}

	thread := &starlark.Thread{
		Name: path,
	}
	_, err := starlark.ExecFileOptions(
		&syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
		},
		thread,
		path,
		nil,
		predeclared,
	)
	return err
}

func newConfigurableBuiltin(t reflect.Type, values map[reflect.Type]any) *starlark.Builtin {
	return starlark.NewBuiltin(t.Name(), func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
		if len(kwargs) > 0 {
			return nil, fmt.Errorf("%s: unexpected keyword arguments", b.Name())
		}
		if len(args) != 1 {
			return nil, fmt.Errorf("%s: expecting 1 argument, got %d", b.Name(), len(args))
		}

		value := reflect.New(t).Elem()
		switch t.Kind() {

		case reflect.String:
			s, ok := starlark.AsString(args[0])
			if !ok {
				return nil, fmt.Errorf("%s: expecting string, got %s", b.Name(), args[0].Type())
			}
			value.SetString(s)

		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			var i int64
			if err := starlark.AsInt(args[0], &i); err != nil {
				return nil, fmt.Errorf("%s: %w", b.Name(), err)
			}
			value.SetInt(i)

		case reflect.Float32, reflect.Float64:
			f, ok := starlark.AsFloat(args[0])
			if !ok {
				return nil, fmt.Errorf("%s: expecting float, got %s", b.Name(), args[0].Type())
			}
			value.SetFloat(f)

		case reflect.Bool:
			value.SetBool(bool(args[0].Truth()))

		default:
			return nil, fmt.Errorf("%s: unsupported configurable kind: %s", b.Name(), t.Kind())
		}

		// dscope definitions must be pointers; Fork provides the pointed-to value.
		values[t] = value.Addr().Interface()
		return starlark.None, nil
	})
}
