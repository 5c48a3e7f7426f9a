package calcana

import (
	"context"
	"fmt"
	"net/http"

	"go.opentelemetry.io/otel/trace"
)

// injectTraceparent propagates the active span, if any, as a W3C traceparent
// header so server-side traces can be stitched to the caller's.
func injectTraceparent(ctx context.Context, req *http.Request) {
	sc := trace.SpanFromContext(ctx).SpanContext()
	if !sc.IsValid() {
		return
	}
	req.Header.Set("Traceparent", fmt.Sprintf("00-%s-%s-01", sc.TraceID().String(), sc.SpanID().String()))
}
