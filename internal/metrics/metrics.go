// Copyright 2025 KrakLabs
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program. If not, see <https://www.gnu.org/licenses/>.
//
// For commercial licensing, contact: licensing@kraklabs.com
//
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package metrics holds the Prometheus instrumentation for range runs.
//
// stride is a short-lived CLI, so nothing is served over HTTP. Instead the
// registry can be written once at exit in the node-exporter textfile
// format (--metrics-textfile), which a collector picks up from disk.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// Metrics is a private registry plus the collectors recorded per range run.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	reg *prometheus.Registry

	ranges    *prometheus.CounterVec
	values    *prometheus.CounterVec
	exhausted *prometheus.CounterVec
	duration  prometheus.Histogram
}

// New creates and registers the range collectors on a fresh registry.
func New() *Metrics {
	m := &Metrics{
		reg: prometheus.NewRegistry(),
		ranges: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stride_ranges_total",
			Help: "Ranges driven, by element kind",
		}, []string{"kind"}),
		values: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stride_values_total",
			Help: "Values produced, by element kind",
		}, []string{"kind"}),
		exhausted: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "stride_ranges_exhausted_total",
			Help: "Ranges consumed up to exhaustion, by element kind",
		}, []string{"kind"}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "stride_range_seconds",
			Help:    "Time spent driving a single range",
			Buckets: []float64{0.0001, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5, 10},
		}),
	}
	m.reg.MustRegister(m.ranges, m.values, m.exhausted, m.duration)
	return m
}

// RecordRange records one completed (or abandoned) range run.
func (m *Metrics) RecordRange(kind string, values uint64, exhausted bool, d time.Duration) {
	if m == nil {
		return
	}
	m.ranges.WithLabelValues(kind).Inc()
	m.values.WithLabelValues(kind).Add(float64(values))
	if exhausted {
		m.exhausted.WithLabelValues(kind).Inc()
	}
	m.duration.Observe(d.Seconds())
}

// Gatherer exposes the registry.
func (m *Metrics) Gatherer() prometheus.Gatherer {
	return m.reg
}

// Totals returns the ranges driven and values produced so far, summed
// over all kinds.
func (m *Metrics) Totals() (ranges, values float64, err error) {
	if m == nil {
		return 0, 0, nil
	}
	families, err := m.reg.Gather()
	if err != nil {
		return 0, 0, fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		switch mf.GetName() {
		case "stride_ranges_total":
			ranges = counterSum(mf)
		case "stride_values_total":
			values = counterSum(mf)
		}
	}
	return ranges, values, nil
}

func counterSum(mf *dto.MetricFamily) float64 {
	var total float64
	for _, metric := range mf.GetMetric() {
		total += metric.GetCounter().GetValue()
	}
	return total
}

// WriteTextfile writes the registry to path in the Prometheus text format.
// The file is written atomically (temp file plus rename).
func (m *Metrics) WriteTextfile(path string) error {
	if m == nil {
		return nil
	}
	if err := prometheus.WriteToTextfile(path, m.reg); err != nil {
		return fmt.Errorf("write metrics textfile %s: %w", path, err)
	}
	return nil
}
