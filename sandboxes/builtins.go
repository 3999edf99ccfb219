package sandboxes

import (
	"fmt"
	"math"
	"math/big"

	"go.starlark.net/starlark"
)

// The interpreter universe has no pow, round, sum or divmod, but
// generated code reaches for them constantly. They are provided as
// policy primitives rather than patched into the universe so that a
// narrower policy can withhold them.

var primitives = map[string]*starlark.Builtin{
	"pow":    Pow,
	"round":  Round,
	"sum":    Sum,
	"divmod": Divmod,
}

var Pow = starlark.NewBuiltin("pow", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	if xi, ok := x.(starlark.Int); ok {
		if yi, ok := y.(starlark.Int); ok {
			if n, err := starlark.AsInt32(yi); err == nil && n >= 0 {
				var z big.Int
				z.Exp(xi.BigInt(), big.NewInt(int64(n)), nil)
				return starlark.MakeBigInt(&z), nil
			}
		}
	}
	xf, ok := starlark.AsFloat(x)
	if !ok {
		return nil, fmt.Errorf("pow: got %s, want int or float", x.Type())
	}
	yf, ok := starlark.AsFloat(y)
	if !ok {
		return nil, fmt.Errorf("pow: got %s, want int or float", y.Type())
	}
	return starlark.Float(math.Pow(xf, yf)), nil
})

var Round = starlark.NewBuiltin("round", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x starlark.Value
	var ndigits int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &x, &ndigits); err != nil {
		return nil, err
	}
	if len(args) < 2 {
		if _, ok := x.(starlark.Int); ok {
			return x, nil
		}
		f, ok := starlark.AsFloat(x)
		if !ok {
			return nil, fmt.Errorf("round: got %s, want int or float", x.Type())
		}
		return starlark.MakeInt64(int64(math.Round(f))), nil
	}
	f, ok := starlark.AsFloat(x)
	if !ok {
		return nil, fmt.Errorf("round: got %s, want int or float", x.Type())
	}
	shift := math.Pow(10, float64(ndigits))
	return starlark.Float(math.Round(f*shift) / shift), nil
})

var Sum = starlark.NewBuiltin("sum", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var iterable starlark.Iterable
	var start starlark.Value
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &iterable, &start); err != nil {
		return nil, err
	}
	total := start
	if total == nil {
		total = starlark.MakeInt(0)
	}
	iter := iterable.Iterate()
	defer iter.Done()
	var x starlark.Value
	for iter.Next(&x) {
		var err error
		total, err = addValues(total, x)
		if err != nil {
			return nil, err
		}
	}
	return total, nil
})

func addValues(x, y starlark.Value) (starlark.Value, error) {
	if xi, ok := x.(starlark.Int); ok {
		if yi, ok := y.(starlark.Int); ok {
			return xi.Add(yi), nil
		}
	}
	xf, okx := starlark.AsFloat(x)
	yf, oky := starlark.AsFloat(y)
	if !okx || !oky {
		return nil, fmt.Errorf("sum: cannot add %s and %s", x.Type(), y.Type())
	}
	return starlark.Float(xf + yf), nil
}

var Divmod = starlark.NewBuiltin("divmod", func(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var x, y starlark.Int
	if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &x, &y); err != nil {
		return nil, err
	}
	if y.Sign() == 0 {
		return nil, fmt.Errorf("divmod: integer division by zero")
	}
	return starlark.Tuple{x.Div(y), x.Mod(y)}, nil
})
