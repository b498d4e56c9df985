package reconcile

import (
	"testing"
	"time"

	"roster-importer/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_Scenario(t *testing.T) {
	oldRoster := roster.NewRosterMonth(2015, time.March)
	recA, _ := oldRoster.AddShift(roster.Early, 1, "alfred")
	recB, _ := oldRoster.AddShift(roster.Early, 2, "benny")

	newRoster := roster.NewRosterMonth(2015, time.March)
	// Same slot as B but shifted one hour.
	shifted := roster.NewShiftRecord(roster.Early, 2015, time.March, 2, "benny")
	shifted.Start = shifted.Start.Add(time.Hour)
	require.NoError(t, newRoster.Add(shifted))
	recC, _ := newRoster.AddShift(roster.Early, 3, "christian")

	diff := Compute(oldRoster, newRoster)

	require.Equal(t, 1, diff.OnlyOld.Len())
	_, ok := diff.OnlyOld.Get(recA.ID)
	assert.True(t, ok, "A exists only in the old roster")

	require.Equal(t, 1, diff.OnlyNew.Len())
	_, ok = diff.OnlyNew.Get(recC.ID)
	assert.True(t, ok, "C exists only in the new roster")

	require.Len(t, diff.Changes, 1)
	assert.Equal(t, recB.ID, diff.Changes[0].Before.ID)
	assert.Equal(t, recB.ID, diff.Changes[0].After.ID)
	assert.True(t, diff.HasDifferences())
}

func TestCompute_Idempotent(t *testing.T) {
	m := roster.NewRosterMonth(2015, time.March)
	_, _ = m.AddShift(roster.Early, 2, "Judy")
	_, _ = m.AddShift(roster.Late, 2, "Peter")
	_, _ = m.AddShift(roster.Night, 6, "Paul")

	diff := Compute(m, m)

	assert.Equal(t, 0, diff.OnlyOld.Len())
	assert.Equal(t, 0, diff.OnlyNew.Len())
	assert.Empty(t, diff.Changes)
	assert.False(t, diff.HasDifferences())
}

func TestCompute_Symmetry(t *testing.T) {
	a := roster.NewRosterMonth(2015, time.March)
	_, _ = a.AddShift(roster.Early, 1, "alfred")
	_, _ = a.AddShift(roster.Late, 2, "benny")

	b := roster.NewRosterMonth(2015, time.March)
	_, _ = b.AddShift(roster.Late, 2, "benny")
	_, _ = b.AddShift(roster.Night, 3, "mary")

	ab := Compute(a, b)
	ba := Compute(b, a)

	assert.ElementsMatch(t, ab.OnlyOld.All(), ba.OnlyNew.All())
	assert.ElementsMatch(t, ab.OnlyNew.All(), ba.OnlyOld.All())
}

func TestCompute_AssigneeChange(t *testing.T) {
	oldRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = oldRoster.AddShift(roster.Night, 6, "Paul")

	newRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = newRoster.AddShift(roster.Night, 6, "Mary")

	diff := Compute(oldRoster, newRoster)

	assert.Equal(t, 0, diff.OnlyOld.Len())
	assert.Equal(t, 0, diff.OnlyNew.Len())
	require.Len(t, diff.Changes, 1)
	assert.Equal(t, "Paul", diff.Changes[0].Before.Assignee)
	assert.Equal(t, "Mary", diff.Changes[0].After.Assignee)
}

func TestCompute_CopiesStoreIdentityOntoAfter(t *testing.T) {
	oldRoster := roster.NewRosterMonth(2015, time.March)
	stored := roster.NewShiftRecord(roster.Early, 2015, time.March, 2, "benny")
	stored.ExternalRef = "evt-42"
	stored.Revision = 7
	require.NoError(t, oldRoster.Add(stored))

	newRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = newRoster.AddShift(roster.Early, 2, "carla")

	diff := Compute(oldRoster, newRoster)

	require.Len(t, diff.Changes, 1)
	assert.Equal(t, "evt-42", diff.Changes[0].After.ExternalRef)
	assert.Equal(t, int64(7), diff.Changes[0].After.Revision)
}

func TestCompute_IgnoresSubMinuteJitter(t *testing.T) {
	oldRoster := roster.NewRosterMonth(2015, time.March)
	jittered := roster.NewShiftRecord(roster.Early, 2015, time.March, 2, "benny")
	jittered.Start = jittered.Start.Add(30 * time.Second)
	jittered.End = jittered.End.Add(59 * time.Second)
	require.NoError(t, oldRoster.Add(jittered))

	newRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = newRoster.AddShift(roster.Early, 2, "benny")

	diff := Compute(oldRoster, newRoster)
	assert.False(t, diff.HasDifferences(), "sub-minute differences are store jitter, not changes")
}

func TestCompute_ChangesSortedByID(t *testing.T) {
	oldRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = oldRoster.AddShift(roster.Night, 10, "a")
	_, _ = oldRoster.AddShift(roster.Early, 2, "b")
	_, _ = oldRoster.AddShift(roster.Late, 5, "c")

	newRoster := roster.NewRosterMonth(2015, time.March)
	_, _ = newRoster.AddShift(roster.Night, 10, "x")
	_, _ = newRoster.AddShift(roster.Early, 2, "y")
	_, _ = newRoster.AddShift(roster.Late, 5, "z")

	diff := Compute(oldRoster, newRoster)

	require.Len(t, diff.Changes, 3)
	assert.Equal(t, "2015_03_02_0", diff.Changes[0].After.ID)
	assert.Equal(t, "2015_03_05_1", diff.Changes[1].After.ID)
	assert.Equal(t, "2015_03_10_2", diff.Changes[2].After.ID)
}
