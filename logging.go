package calcana

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// ZapTelemetry bridges TelemetryHooks onto a zap logger, so embedders that
// already run zap get the client's request log and metrics for free.
func ZapTelemetry(logger *zap.Logger) TelemetryHooks {
	return TelemetryHooks{
		OnHTTPResponse: func(_ context.Context, req *http.Request, resp *http.Response, err error, latency time.Duration) {
			fields := []zap.Field{
				zap.String("method", req.Method),
				zap.String("path", req.URL.Path),
				zap.Duration("latency", latency),
			}
			if resp != nil {
				fields = append(fields, zap.Int("status", resp.StatusCode))
			}
			if err != nil {
				logger.Warn("calcana request failed", append(fields, zap.Error(err))...)
				return
			}
			logger.Debug("calcana request", fields...)
		},
		OnLogEntry: func(_ context.Context, entry LogEntry) {
			fields := make([]zap.Field, 0, len(entry.Fields))
			for k, v := range entry.Fields {
				fields = append(fields, zap.Any(k, v))
			}
			if entry.Level == LogLevelError {
				logger.Error(entry.Message, fields...)
				return
			}
			logger.Info(entry.Message, fields...)
		},
		OnMetric: func(_ context.Context, metric Metric) {
			logger.Debug("calcana metric",
				zap.String("name", metric.Name),
				zap.Float64("value", metric.Value),
				zap.Any("labels", metric.Labels))
		},
	}
}
