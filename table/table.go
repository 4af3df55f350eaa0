// Package table assembles wrapped cells into a grid and draws it with a
// border theme.
package table

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/telton/gridline/cell"
)

const (
	// DefaultWidth is the column width FromFlat uses when none are given.
	DefaultWidth = 10
	// IndexWidth is the width of the column added by Number.
	IndexWidth = 3
	// IndexLabel is the header of the column added by Number.
	IndexLabel = "#"
)

var (
	// ErrNoColumns is returned when a table is built without any column.
	ErrNoColumns = errors.New("table has no columns")
	// ErrColumnCount is returned when a row's length differs from the column count.
	ErrColumnCount = errors.New("row column count mismatch")
	// ErrDimension is returned when flat values do not tile into whole rows.
	ErrDimension = errors.New("values do not fit the column count")
	// ErrWidthCount is returned when explicit widths do not match the column count.
	ErrWidthCount = errors.New("width count mismatch")
)

// Column describes one header. A zero Width means the label's rune count.
type Column struct {
	Width int
	Label string
}

// Table is a grid of wrapped cells. Headers share one height; each row
// shares its own height; column j is Headers()[j].Width() wide everywhere.
type Table struct {
	headers []cell.Cell
	rows    [][]cell.Cell
}

// Make wraps the column labels and every row value into a Table.
func Make(columns []Column, rows [][]string) (*Table, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}

	preHeaders := make([]cell.Cell, 0, len(columns))
	for i, col := range columns {
		width := col.Width
		if width == 0 {
			width = utf8.RuneCountInString(col.Label)
		}
		c, err := cell.Wrap(width, col.Label)
		if err != nil {
			return nil, fmt.Errorf("column %d (%q): %w", i, col.Label, err)
		}
		preHeaders = append(preHeaders, c)
	}

	t := &Table{headers: cell.PadRow(preHeaders)}

	for i, row := range rows {
		if len(row) != len(t.headers) {
			return nil, fmt.Errorf("%w: row %d has %d values, want %d", ErrColumnCount, i, len(row), len(t.headers))
		}
		wrapped, err := t.wrapRow(row)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
		t.rows = append(t.rows, wrapped)
	}

	return t, nil
}

// FromFlat builds a Table from a single row-major sequence whose first
// columnsPerRow values are the header labels. Without widths every column
// is DefaultWidth wide.
func FromFlat(values []string, columnsPerRow int, widths []int) (*Table, error) {
	if columnsPerRow < 1 {
		return nil, fmt.Errorf("%w: %d columns per row", ErrDimension, columnsPerRow)
	}
	if len(values) < columnsPerRow || len(values)%columnsPerRow != 0 {
		return nil, fmt.Errorf("%w: %d values into rows of %d", ErrDimension, len(values), columnsPerRow)
	}
	if widths != nil && len(widths) != columnsPerRow {
		return nil, fmt.Errorf("%w: %d widths for %d columns", ErrWidthCount, len(widths), columnsPerRow)
	}

	columns := make([]Column, columnsPerRow)
	for i := range columns {
		width := DefaultWidth
		if widths != nil {
			width = widths[i]
			if width < 1 {
				return nil, fmt.Errorf("column %d: %w: %d (must be >= 1)", i, cell.ErrInvalidWidth, width)
			}
		}
		columns[i] = Column{Width: width, Label: values[i]}
	}

	var rows [][]string
	for start := columnsPerRow; start < len(values); start += columnsPerRow {
		rows = append(rows, values[start:start+columnsPerRow])
	}

	return Make(columns, rows)
}

// Number prepends an IndexWidth wide column holding each row's zero-based
// index under an IndexLabel header. It mutates t in place and is not
// idempotent: a second call adds another index column. On error t is left
// unchanged.
func (t *Table) Number() error {
	idx, err := cell.Wrap(IndexWidth, IndexLabel)
	if err != nil {
		return fmt.Errorf("index header: %w", err)
	}
	headers := cell.PadRow(append([]cell.Cell{idx}, t.headers...))

	rows := make([][]cell.Cell, len(t.rows))
	for i, row := range t.rows {
		idx, err := cell.Wrap(IndexWidth, strconv.Itoa(i))
		if err != nil {
			return fmt.Errorf("index of row %d: %w", i, err)
		}
		rows[i] = cell.PadRow(append([]cell.Cell{idx}, row...))
	}

	t.headers = headers
	t.rows = rows
	return nil
}

// Headers returns a copy of the header cells.
func (t *Table) Headers() []cell.Cell {
	return append([]cell.Cell(nil), t.headers...)
}

// Rows returns a copy of the data rows.
func (t *Table) Rows() [][]cell.Cell {
	rows := make([][]cell.Cell, len(t.rows))
	for i, row := range t.rows {
		rows[i] = append([]cell.Cell(nil), row...)
	}
	return rows
}

// Widths returns the width of every column.
func (t *Table) Widths() []int {
	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = h.Width()
	}
	return widths
}

func (t *Table) wrapRow(values []string) ([]cell.Cell, error) {
	row := make([]cell.Cell, 0, len(values))
	for j, v := range values {
		c, err := cell.Wrap(t.headers[j].Width(), v)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		row = append(row, c)
	}
	return cell.PadRow(row), nil
}
