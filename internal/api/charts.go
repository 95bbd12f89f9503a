package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/brandontiqui/fitness-tracking-watch/internal/domain"
)

// chart renders the wearer's day buckets for one metric as a bar chart.
func (h *Handler) chart(w http.ResponseWriter, r *http.Request, wearerID string) {
	if !requireReadScope(w, r) {
		return
	}

	kind, err := domain.ParseMetricKind(r.URL.Query().Get("metric"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "validation_failed", "metric must be steps or calories")
		return
	}

	buckets, err := h.service.Summary(wearerID, kind)
	if err != nil {
		writeError(w, http.StatusNotFound, "not_found", "wearer not found")
		return
	}

	bar := generateBucketChart(wearerID, kind, buckets)
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := bar.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

func generateBucketChart(wearerID string, kind domain.MetricKind, buckets []domain.DayBucket) *charts.Bar {
	bar := charts.NewBar()

	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{Theme: "macarons"}),
		charts.WithTitleOpts(opts.Title{
			Title:    fmt.Sprintf("Daily %s", kind),
			Subtitle: "wearer " + wearerID,
		}),
		charts.WithXAxisOpts(opts.XAxis{
			AxisLabel: &opts.AxisLabel{
				Rotate: 45,
			},
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
			AxisPointer: &opts.AxisPointer{
				Type: "shadow",
			},
		}),
	)

	labels := make([]string, 0, len(buckets))
	values := make([]opts.BarData, 0, len(buckets))
	for _, bucket := range buckets {
		day := time.Unix(bucket.Day*domain.SecondsPerDay, 0).UTC()
		labels = append(labels, day.Format("2006-01-02"))
		values = append(values, opts.BarData{Value: bucket.Value})
	}

	bar.SetXAxis(labels)
	bar.AddSeries(string(kind), values)
	return bar
}
