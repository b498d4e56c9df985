package importer

import (
	"strings"

	"roster-importer/core/grid"
	"roster-importer/core/roster"

	"go.uber.org/zap"
)

// assigneeSeparators split a cell naming several people into tokens.
var assigneeSeparators = strings.NewReplacer("/", ",")

// Extractor assembles a RosterMonth from a classified cell grid.
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates an extractor logging through the given logger.
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract scans the grid for date anchors and shift label rows and
// assembles the typed roster month. The first anchor establishes the
// month; anchors of a different month are skipped entirely. It fails
// with *UnsupportedFormatError when the grid has no rows and with
// *DateRangeError when no date anchor exists at all.
func (e *Extractor) Extract(g grid.Grid, year int) (*roster.RosterMonth, error) {
	if g.Rows() == 0 {
		return nil, &UnsupportedFormatError{Reason: "document contains no table"}
	}

	var month *roster.RosterMonth

	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < len(g[row]); col++ {
			cell := grid.Classify(g.Cell(row, col))
			if cell.Kind != grid.KindDateAnchor {
				continue
			}

			if month == nil {
				month = roster.NewRosterMonth(year, cell.Month)
				e.logger.Info("Importing duty roster",
					zap.Int("year", year),
					zap.Stringer("month", cell.Month),
				)
			}

			// A trailing or leading day of an adjacent month shares the
			// grid with this one; its whole column is skipped.
			if cell.Month != month.Month() {
				e.logger.Warn("Skipping date of adjacent month",
					zap.Int("day", cell.Day),
					zap.Stringer("month", cell.Month),
				)
				continue
			}

			for _, kind := range roster.Kinds {
				e.addShiftFromColumn(g, month, kind, row, col, cell.Day)
			}
		}
	}

	if month == nil {
		return nil, &DateRangeError{Reason: "no date anchor found"}
	}
	return month, nil
}

// addShiftFromColumn looks below the anchor row for the row headed by
// the given shift kind and adds the personnel found in the anchor's
// column there.
func (e *Extractor) addShiftFromColumn(g grid.Grid, month *roster.RosterMonth, kind roster.ShiftKind, anchorRow, anchorCol, day int) {
	offset := e.findShiftRowOffset(g, kind, anchorRow)
	if offset == -1 {
		e.logger.Info("No shift row for date",
			zap.Stringer("shift", kind),
			zap.Int("day", day),
		)
		return
	}

	text := g.Cell(anchorRow+offset, anchorCol)
	if grid.IsBlank(text) || strings.TrimSpace(text) == "-" {
		return
	}

	for _, token := range strings.Split(assigneeSeparators.Replace(text), ",") {
		assignee := strings.TrimSpace(token)
		if assignee == "" {
			continue
		}
		if _, err := month.AddShift(kind, day, assignee); err != nil {
			e.logger.Warn("Dropping shift outside roster month",
				zap.Stringer("shift", kind),
				zap.Int("day", day),
				zap.Error(err),
			)
			continue
		}
		e.logger.Info("Found shift",
			zap.Int("day", day),
			zap.Stringer("shift", kind),
			zap.String("assignee", assignee),
		)
	}
}

// findShiftRowOffset walks the row headers below the anchor row until
// it finds the label of the given kind. A blank header or another date
// anchor ends the shift block, in which case -1 is returned.
func (e *Extractor) findShiftRowOffset(g grid.Grid, kind roster.ShiftKind, anchorRow int) int {
	for offset := 1; anchorRow+offset < g.Rows(); offset++ {
		header := grid.Classify(g.Cell(anchorRow+offset, 0))
		if header.Kind == grid.KindBlank || header.Kind == grid.KindDateAnchor {
			return -1
		}
		labelKind, err := grid.ParseShiftLabel(header.Text)
		if err != nil {
			// A header that should be a label but is not. Recorded and
			// skipped; the block continues below it.
			e.logger.Warn("Unparsable row header", zap.Error(err))
			continue
		}
		if labelKind == kind {
			return offset
		}
	}
	return -1
}
