// Package tools tracks per-run tool call metrics. A "tool" is any measured
// external call a step makes (LLM completion, law-text loading).
package tools

import (
	"fmt"
	"time"

	"github.com/lexandes/agent/internal/domain"
)

// Record accumulates one tool invocation on the run. It mutates the run in
// memory only; persistence is the caller's responsibility.
func Record(run *domain.Run, toolName string, durationMs int64) {
	for i := range run.Tools {
		if run.Tools[i].Name == toolName {
			run.Tools[i].Calls++
			run.Tools[i].TotalMs += durationMs
			return
		}
	}
	run.Tools = append(run.Tools, domain.ToolMetric{
		Name:    toolName,
		Calls:   1,
		TotalMs: durationMs,
	})
}

// Measure runs fn, records its wall-clock duration as a tool metric and emits
// one log line through logf. A failed call propagates its error and is not
// recorded; only successful invocations contribute to metrics.
func Measure[T any](run *domain.Run, toolName string, logf func(string), fn func() (T, error)) (T, error) {
	start := time.Now()
	result, err := fn()
	if err != nil {
		return result, err
	}
	durationMs := time.Since(start).Milliseconds()

	Record(run, toolName, durationMs)
	logf(fmt.Sprintf("[metrics] Tool %q executed in %dms", toolName, durationMs))

	return result, nil
}
