package services

import "time"

// MetricsFanout forwards every measurement to each recorder in turn
type MetricsFanout struct {
	recorders []MetricsRecorderInterface
}

func NewMetricsFanout(recorders ...MetricsRecorderInterface) *MetricsFanout {
	out := make([]MetricsRecorderInterface, 0, len(recorders))
	for _, r := range recorders {
		if r != nil {
			out = append(out, r)
		}
	}
	return &MetricsFanout{recorders: out}
}

func (f *MetricsFanout) IncrementCounter(name string, tags map[string]string) {
	for _, r := range f.recorders {
		r.IncrementCounter(name, tags)
	}
}

func (f *MetricsFanout) RecordProcessingTime(name string, duration time.Duration) {
	for _, r := range f.recorders {
		r.RecordProcessingTime(name, duration)
	}
}

func (f *MetricsFanout) RecordGauge(name string, value float64, tags map[string]string) {
	for _, r := range f.recorders {
		r.RecordGauge(name, value, tags)
	}
}

type noopMetrics struct{}

func (noopMetrics) IncrementCounter(string, map[string]string)     {}
func (noopMetrics) RecordProcessingTime(string, time.Duration)     {}
func (noopMetrics) RecordGauge(string, float64, map[string]string) {}
