package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan joins the span id bound to ctx onto err, tying the error to
// the log records of the invocation that produced it.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	err = errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
	return err
}
