package importer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"
	"time"

	"roster-importer/core/grid"
	"roster-importer/core/reconcile"
	"roster-importer/core/roster"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type memoryStore struct {
	events  map[string]reconcile.StoredEvent
	nextRef int
}

func newMemoryStore() *memoryStore {
	return &memoryStore{events: make(map[string]reconcile.StoredEvent)}
}

func (m *memoryStore) ListMonth(_ context.Context, year int, month time.Month) ([]reconcile.StoredEvent, error) {
	var out []reconcile.StoredEvent
	for _, ev := range m.events {
		if ev.Start.Year() == year && ev.Start.Month() == month {
			out = append(out, ev)
		}
	}
	return out, nil
}

func (m *memoryStore) Create(_ context.Context, rec roster.ShiftRecord) (string, error) {
	m.nextRef++
	ref := fmt.Sprintf("ref-%d", m.nextRef)
	m.events[ref] = reconcile.StoredEvent{
		Summary:     roster.Summary(rec.Kind, rec.Assignee),
		Start:       rec.Start,
		End:         rec.End,
		ExternalRef: ref,
		Revision:    1,
	}
	return ref, nil
}

func (m *memoryStore) Update(_ context.Context, ref string, rec roster.ShiftRecord, revision int64) (int64, error) {
	ev, ok := m.events[ref]
	if !ok {
		return 0, fmt.Errorf("no event %s", ref)
	}
	if ev.Revision != revision {
		return 0, fmt.Errorf("revision conflict on %s", ref)
	}
	m.events[ref] = reconcile.StoredEvent{
		Summary:     roster.Summary(rec.Kind, rec.Assignee),
		Start:       rec.Start,
		End:         rec.End,
		ExternalRef: ref,
		Revision:    revision + 1,
	}
	return revision + 1, nil
}

func (m *memoryStore) Delete(_ context.Context, ref string) error {
	if _, ok := m.events[ref]; !ok {
		return fmt.Errorf("no event %s", ref)
	}
	delete(m.events, ref)
	return nil
}

type gridReader struct {
	grid grid.Grid
}

func (r *gridReader) ReadGrid(_ io.Reader) (grid.Grid, error) {
	return r.grid, nil
}

type recordingSender struct {
	subjects []string
	bodies   []string
}

func (s *recordingSender) Send(_ context.Context, subject, body string) error {
	s.subjects = append(s.subjects, subject)
	s.bodies = append(s.bodies, body)
	return nil
}

func newTestService(store reconcile.Store, g grid.Grid, sender *recordingSender) *Service {
	logger := zap.NewNop()
	var mailSender *recordingSender
	if sender != nil {
		mailSender = sender
	}
	archiver := NewArchiver(nil, "", logger)
	if mailSender == nil {
		return NewService(store, &gridReader{grid: g}, archiver, nil, logger)
	}
	return NewService(store, &gridReader{grid: g}, archiver, mailSender, logger)
}

func TestService_Import_FreshMonth(t *testing.T) {
	store := newMemoryStore()
	sender := &recordingSender{}
	svc := newTestService(store, sampleGrid(), sender)

	result, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx",
		Year:     2015,
		Month:    time.March,
	}, nil)
	require.NoError(t, err)

	assert.True(t, result.Changed)
	assert.True(t, result.Outcome.FullyApplied())
	assert.Equal(t, 7, result.Outcome.Added)
	assert.Len(t, store.events, 7)
	assert.Contains(t, result.Report, "The following shifts were added:")
	assert.Contains(t, result.Report, "Statistics:")

	require.Len(t, sender.bodies, 1)
	assert.Equal(t, result.Report, sender.bodies[0])
}

func TestService_Import_NoChanges(t *testing.T) {
	store := newMemoryStore()
	sender := &recordingSender{}
	svc := newTestService(store, sampleGrid(), sender)

	_, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx", Year: 2015, Month: time.March,
	}, nil)
	require.NoError(t, err)

	result, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx", Year: 2015, Month: time.March,
	}, nil)
	require.NoError(t, err)

	assert.False(t, result.Changed)
	assert.Equal(t, NoChangesMessage, result.Report)
	assert.Len(t, sender.bodies, 1, "no mail for a no-change import")
}

func TestService_Import_DryRun(t *testing.T) {
	store := newMemoryStore()
	sender := &recordingSender{}
	svc := newTestService(store, sampleGrid(), sender)

	dry, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx", Year: 2015, Month: time.March, DryRun: true,
	}, nil)
	require.NoError(t, err)

	assert.True(t, dry.Changed)
	assert.Empty(t, store.events, "dry run must not mutate the store")
	assert.Empty(t, sender.bodies, "dry run must not send mail")

	live, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx", Year: 2015, Month: time.March,
	}, nil)
	require.NoError(t, err)

	// A dry run reports exactly what the live run applies.
	assert.Equal(t, dry.Report, live.Report)
}

func TestService_Import_YearMonthFromFilename(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, sampleGrid(), nil)

	result, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx",
	}, nil)
	require.NoError(t, err)
	assert.True(t, result.Changed)
}

func TestService_Import_BadFilename(t *testing.T) {
	svc := newTestService(newMemoryStore(), sampleGrid(), nil)

	_, err := svc.Import(context.Background(), ImportRequest{
		Filename: "roster.xlsx",
	}, nil)
	var dateErr *DateRangeError
	assert.ErrorAs(t, err, &dateErr)
}

func TestService_Import_MonthMismatch(t *testing.T) {
	svc := newTestService(newMemoryStore(), sampleGrid(), nil)

	_, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_04.xlsx",
	}, nil)
	var dateErr *DateRangeError
	assert.ErrorAs(t, err, &dateErr)
}

func TestService_Import_CSV(t *testing.T) {
	svc := newTestService(newMemoryStore(), sampleGrid(), nil)

	result, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx", CreateCSV: true,
	}, nil)
	require.NoError(t, err)
	assert.Contains(t, result.CSV, "Subject,Start Date,Start Time")
	assert.Contains(t, result.CSV, "FD: Tom")
}

func TestService_Import_Reassignment(t *testing.T) {
	store := newMemoryStore()
	svc := newTestService(store, sampleGrid(), nil)

	_, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx",
	}, nil)
	require.NoError(t, err)

	changed := sampleGrid()
	changed[1][1] = "Maria" // was Tom

	svc2 := newTestService(store, changed, nil)
	result, err := svc2.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx",
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Outcome.Updated)
	assert.Equal(t, 0, result.Outcome.Added)
	assert.Equal(t, 0, result.Outcome.Deleted)
	assert.Contains(t, result.Report, "Date/shift before: 02.03. FD: Tom")
	assert.Contains(t, result.Report, "Date/shift after:  02.03. FD: Maria")
	assert.Len(t, store.events, 7)
}

// failingStore rejects every create while passing the other
// operations through.
type failingStore struct {
	reconcile.Store
	createErr error
}

func (f *failingStore) Create(ctx context.Context, rec roster.ShiftRecord) (string, error) {
	if f.createErr != nil {
		return "", f.createErr
	}
	return f.Store.Create(ctx, rec)
}

func TestService_Import_StoreFailuresSurfaceInReport(t *testing.T) {
	store := &failingStore{Store: newMemoryStore(), createErr: errors.New("store down")}
	sender := &recordingSender{}
	svc := newTestService(store, sampleGrid(), sender)

	result, err := svc.Import(context.Background(), ImportRequest{
		Filename: "2015_03.xlsx",
	}, nil)
	require.NoError(t, err)

	assert.True(t, result.Outcome.PartiallyApplied())
	assert.Len(t, result.Outcome.Failed, 7)
	assert.Equal(t, 0, result.Outcome.Added)

	assert.Contains(t, result.Report, "WARNING: 7 calendar operation(s) failed and were not applied:")
	assert.Contains(t, result.Report, "store down")

	// The mail carries the failure block too.
	require.Len(t, sender.bodies, 1)
	assert.Contains(t, sender.bodies[0], "WARNING: 7 calendar operation(s) failed")
}
