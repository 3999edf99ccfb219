package configs

import (
	"iter"
	"reflect"

	"github.com/reusee/dscope"
)

// Configurable marks value types that config files may set, either as
// cue fields or as constructor calls in rlm.star scripts.
type Configurable interface {
	StarlarkConfigurable()
}

var configurableType = reflect.TypeFor[Configurable]()

func ConfigurableTypes(scope dscope.Scope) iter.Seq[reflect.Type] {
	return func(yield func(reflect.Type) bool) {
		for t := range scope.AllTypes() {
			if t.Implements(configurableType) {
				if !yield(t) {
					break
				}
			}
		}
	}
}
