package measure

import "time"

// Measure collects training metrics for the steps of a recipe.
type Measure interface {
	// AddMetric returns the metric for the named step, creating it when
	// needed.
	AddMetric(name string) Metric
	// AllMetrics returns every metric keyed by step name.
	AllMetrics() map[string]Metric
}

// Metric accumulates durations for a single step.
type Metric interface {
	AddDuration(elapsed time.Duration)
	// TotalDuration returns the accumulated duration across every recorded
	// training run.
	TotalDuration() time.Duration
	// AVGDuration returns the rounded average duration of a training run.
	AVGDuration() time.Duration
}
