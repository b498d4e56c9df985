package report

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"roster-importer/core/roster"
)

// realNamePattern matches the leading run of word characters, spaces
// and dots in an assignee entry. Only the tail from the first other
// character on is dropped, so "Carla until 19:00" keys as
// "Carla until 19".
var realNamePattern = regexp.MustCompile(`^[\w]+[ \w.]*`)

// AssigneeStats aggregates the shifts of one person in a month.
type AssigneeStats struct {
	Name        string
	EarlyShifts int
	LateShifts  int
	NightShifts int
	// Percentage is this person's share of all assigned shifts.
	Percentage float64
}

// TotalShifts returns the number of shifts assigned to this person.
func (a AssigneeStats) TotalShifts() int {
	return a.EarlyShifts + a.LateShifts + a.NightShifts
}

// Statistics holds the coverage numbers of one roster month.
type Statistics struct {
	PossibleEarlyShifts int
	AssignedEarlyShifts int
	PossibleLateShifts  int
	AssignedLateShifts  int
	PossibleNightShifts int
	AssignedNightShifts int

	// Assignees maps the real name to the person's aggregate.
	Assignees map[string]*AssigneeStats
}

// TotalPossibleShifts returns the number of shifts the month offers.
func (s *Statistics) TotalPossibleShifts() int {
	return s.PossibleEarlyShifts + s.PossibleLateShifts + s.PossibleNightShifts
}

// TotalAssignedShifts returns the number of shifts with personnel.
func (s *Statistics) TotalAssignedShifts() int {
	return s.AssignedEarlyShifts + s.AssignedLateShifts + s.AssignedNightShifts
}

// PercentageAssigned returns the overall coverage in percent.
func (s *Statistics) PercentageAssigned() float64 {
	possible := s.TotalPossibleShifts()
	if possible == 0 {
		return 0
	}
	return float64(s.TotalAssignedShifts()) * 100 / float64(possible)
}

// SortedAssignees returns the assignees ordered by descending total
// shifts, names breaking ties.
func (s *Statistics) SortedAssignees() []*AssigneeStats {
	out := make([]*AssigneeStats, 0, len(s.Assignees))
	for _, a := range s.Assignees {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].TotalShifts() != out[j].TotalShifts() {
			return out[i].TotalShifts() > out[j].TotalShifts()
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// ComputeStatistics derives the coverage numbers for a roster month.
// Early and night shifts are offered every day; the late shift is not
// offered on Saturday and Sunday.
func ComputeStatistics(month *roster.RosterMonth) *Statistics {
	stats := &Statistics{Assignees: make(map[string]*AssigneeStats)}

	anchor := month.Anchor()
	lastDay := anchor.AddDate(0, 1, -1).Day()

	for day := 1; day <= lastDay; day++ {
		date := time.Date(month.Year(), month.Month(), day, 0, 0, 0, 0, time.Local)

		stats.PossibleEarlyShifts++
		stats.PossibleNightShifts++
		if wd := date.Weekday(); wd != time.Saturday && wd != time.Sunday {
			stats.PossibleLateShifts++
		}

		for _, rec := range month.Day(day) {
			name := realName(rec.Assignee)
			a := stats.Assignees[name]
			if a == nil {
				a = &AssigneeStats{Name: name}
				stats.Assignees[name] = a
			}

			switch rec.Kind {
			case roster.Early:
				a.EarlyShifts++
				stats.AssignedEarlyShifts++
			case roster.Late:
				a.LateShifts++
				stats.AssignedLateShifts++
			case roster.Night:
				a.NightShifts++
				stats.AssignedNightShifts++
			}
		}
	}

	if total := stats.TotalAssignedShifts(); total > 0 {
		for _, a := range stats.Assignees {
			a.Percentage = float64(a.TotalShifts()) * 100 / float64(total)
		}
	}

	return stats
}

func realName(assignee string) string {
	if m := realNamePattern.FindString(strings.TrimSpace(assignee)); m != "" {
		return strings.TrimSpace(m)
	}
	return assignee
}
