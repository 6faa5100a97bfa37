package util

import (
	"bytes"
	"strings"
	"testing"

	"sf-server/models/schedule"
)

func TestRenderWeeklyHoursChart(t *testing.T) {
	ws := schedule.WeeklySchedule{Days: map[string]schedule.DaySchedule{}}
	for _, day := range schedule.DayNames {
		ws.Days[day] = schedule.DaySchedule{}
	}
	ws.Days["monday"] = schedule.DaySchedule{
		IsOpen: true, Open: "09:00", Close: "19:00",
		Breaks: []schedule.BreakWindow{{Start: "13:00", End: "14:00"}},
	}

	var buf bytes.Buffer
	if err := RenderWeeklyHoursChart(&buf, "Panadería Centro", ws); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	html := buf.String()
	if !strings.Contains(html, "Panadería Centro") {
		t.Error("Expected the store name in the rendered chart")
	}
	if !strings.Contains(html, "monday") {
		t.Error("Expected the weekday axis in the rendered chart")
	}
}

func TestOpenMinutes(t *testing.T) {
	tests := []struct {
		name string
		ds   schedule.DaySchedule
		want int
	}{
		{"closed day", schedule.DaySchedule{}, 0},
		{"plain window", schedule.DaySchedule{IsOpen: true, Open: "09:00", Close: "17:00"}, 480},
		{"window with break", schedule.DaySchedule{
			IsOpen: true, Open: "09:00", Close: "19:00",
			Breaks: []schedule.BreakWindow{{Start: "13:00", End: "14:00"}},
		}, 540},
		{"overnight window", schedule.DaySchedule{IsOpen: true, Open: "22:00", Close: "02:00", CrossesMidnight: true}, 240},
		{"broken times", schedule.DaySchedule{IsOpen: true, Open: "late", Close: "later"}, 0},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			if got := openMinutes(test.ds); got != test.want {
				t.Errorf("openMinutes = %d, want %d", got, test.want)
			}
		})
	}
}
