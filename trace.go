package sdk

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"
)

// traceparentHeader renders a W3C traceparent value from the span in ctx, if
// any. Traceparent is not protocol-prefixed and stays outside the signature.
func traceparentHeader(ctx context.Context) (string, bool) {
	span := trace.SpanFromContext(ctx)
	sc := span.SpanContext()
	if !sc.IsValid() {
		return "", false
	}
	return fmt.Sprintf("00-%s-%s-01", sc.TraceID().String(), sc.SpanID().String()), true
}
