package roster

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestShiftID_Format(t *testing.T) {
	day := time.Date(2015, time.February, 22, 7, 0, 0, 0, time.Local)

	assert.Equal(t, "2015_02_22_0", ShiftID(Early, day))
	assert.Equal(t, "2015_02_22_1", ShiftID(Late, day))
	assert.Equal(t, "2015_02_22_2", ShiftID(Night, day))
}

func TestShiftID_Deterministic(t *testing.T) {
	start, _ := Night.Span(2015, time.March, 6)
	assert.Equal(t, ShiftID(Night, start), ShiftID(Night, start))
}

func TestShiftID_SortableByCalendarOrder(t *testing.T) {
	feb9, _ := Late.Span(2015, time.February, 9)
	feb10, _ := Early.Span(2015, time.February, 10)

	assert.Less(t, ShiftID(Late, feb9), ShiftID(Early, feb10),
		"ids must sort by day before shift ordinal")
}

func TestSummaryRoundTrip(t *testing.T) {
	for _, kind := range Kinds {
		for _, assignee := range []string{"Judy", "Judy/Tom", "Judy until 19.00"} {
			summary := Summary(kind, assignee)
			gotKind, gotAssignee, ok := ParseSummary(summary)
			assert.True(t, ok, "summary %q must parse", summary)
			assert.Equal(t, kind, gotKind)
			assert.Equal(t, assignee, gotAssignee)
		}
	}
}

func TestParseSummary_ForeignEvents(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{name: "no separator", text: "Dentist appointment"},
		{name: "separator but foreign label", text: "Birthday: Tom"},
		{name: "label without separator", text: "Krank! SD"},
		{name: "empty", text: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, ok := ParseSummary(tt.text)
			assert.False(t, ok)
		})
	}
}

func TestParseSummary_PrefixedLabel(t *testing.T) {
	// Suffix matching tolerates prefix noise before the label.
	kind, assignee, ok := ParseSummary("Update SD: Benny")
	assert.True(t, ok)
	assert.Equal(t, Late, kind)
	assert.Equal(t, "Benny", assignee)
}
