package util

import (
	"fmt"
	"io"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"sf-server/hours"
	"sf-server/models/schedule"
)

// RenderWeeklyHoursChart renders a bar chart of a store's open hours per
// weekday as a standalone HTML page, for the dashboard's schedule view.
func RenderWeeklyHoursChart(w io.Writer, storeName string, ws schedule.WeeklySchedule) error {
	days := make([]string, 0, len(schedule.DayNames))
	values := make([]opts.BarData, 0, len(schedule.DayNames))

	for _, day := range schedule.DayNames {
		ds := ws.Day(day)
		openHours := float64(openMinutes(ds)) / 60.0
		days = append(days, day)
		values = append(values, opts.BarData{Value: openHours})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: fmt.Sprintf("Weekly hours - %s", storeName),
			Width:     "800px",
			Height:    "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    storeName,
			Subtitle: "Open hours per weekday (breaks excluded)",
		}),
		charts.WithYAxisOpts(opts.YAxis{Name: "hours"}),
	)

	bar.SetXAxis(days).AddSeries("open hours", values,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Formatter: "{c}",
		}),
	)

	return bar.Render(w)
}

// openMinutes computes how long a day is open, overall window minus breaks.
// Windows that cross midnight are measured through the wrap.
func openMinutes(ds schedule.DaySchedule) int {
	if !ds.IsOpen {
		return 0
	}
	openMin, err := hours.ToMinutes(ds.Open)
	if err != nil {
		return 0
	}
	closeMin, err := hours.ToMinutes(ds.Close)
	if err != nil {
		return 0
	}
	if closeMin < openMin {
		closeMin += hours.MinutesPerDay
	}
	total := closeMin - openMin

	for _, b := range ds.Breaks {
		startMin, errStart := hours.ToMinutes(b.Start)
		endMin, errEnd := hours.ToMinutes(b.End)
		if errStart != nil || errEnd != nil || endMin <= startMin {
			continue
		}
		total -= endMin - startMin
	}
	if total < 0 {
		return 0
	}
	return total
}
