package domain

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"time"
)

type Metrics []ForwardInsight

func (m Metrics) Insights() Insights {
	insights := NewInsights()
	var durations []float64

	for _, metric := range m {
		insights.TotalForwarded++
		if metric.ACK {
			insights.TotalForwardedWithSuccess++
			insights.TotalByStatus[strconv.Itoa(metric.Status)]++
		} else {
			insights.TotalForwardedWithErr++
		}

		insights.TotalByMode[string(metric.Mode)]++
		durations = append(durations, float64(metric.TimeDurationMs))

		ended := metric.TimeEnded.UTC()
		dateInMinute := time.Date(ended.Year(), ended.Month(), ended.Day(), ended.Hour(), ended.Minute(), 0, 0, time.UTC)
		insights.Rpm.add(dateInMinute)
	}

	if len(durations) > 0 {
		insights.P99, _ = percentile(durations, 0.99)
		insights.P75, _ = percentile(durations, 0.75)
		insights.PercentageSuccess = fmt.Sprintf("%.2f%%", float64(insights.TotalForwardedWithSuccess)/float64(insights.TotalForwarded)*100)
	}

	return insights
}

type Insights struct {
	TotalForwarded            int64            `json:"total_forwarded"`
	TotalForwardedWithSuccess int64            `json:"total_forwarded_with_success"`
	TotalForwardedWithErr     int64            `json:"total_forwarded_with_err"`
	PercentageSuccess         string           `json:"percentage_success"`
	TotalByStatus             map[string]int64 `json:"total_by_status"` // downstream status >> count
	TotalByMode               map[string]int64 `json:"total_by_mode"`   // json|text >> count
	Rpm                       *RPM             `json:"rpm"`
	P99                       float64          `json:"p99_ms"`
	P75                       float64          `json:"p75_ms"`
}

func NewInsights() Insights {
	return Insights{
		TotalByStatus: make(map[string]int64),
		TotalByMode:   make(map[string]int64),
		Rpm:           &RPM{Timeseries: []time.Time{}, Values: []int64{}},
	}
}

type RPM struct {
	Timeseries []time.Time `json:"timeseries"`
	Values     []int64     `json:"values"`
}

// add expects minutes in ascending order, which is how the store returns them.
func (r *RPM) add(dateInMinute time.Time) {
	if n := len(r.Timeseries); n > 0 && r.Timeseries[n-1].Equal(dateInMinute) {
		r.Values[n-1]++
		return
	}
	r.Timeseries = append(r.Timeseries, dateInMinute)
	r.Values = append(r.Values, 1)
}

func percentile(data []float64, p float64) (float64, error) {
	if len(data) == 0 {
		return 0, fmt.Errorf("empty array")
	}
	if p < 0 || p > 1 {
		return 0, fmt.Errorf("p must be between 0 and 1")
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := float64(len(sorted))
	idx := int(math.Ceil(p*n) - 1)
	if idx < 0 {
		idx = 0
	}
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}

	return sorted[idx], nil
}
