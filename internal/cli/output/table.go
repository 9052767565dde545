package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableRenderer supplies the rows of a table view.
type TableRenderer interface {
	Headers() []string
	Rows() [][]string
}

// PrintTable renders data as a borderless, left-aligned table: headers,
// two-space column gaps, no separator lines. Matches the compact look of
// ls-style listings rather than boxed output.
func PrintTable(w io.Writer, data TableRenderer) error {
	tw := tablewriter.NewWriter(w)
	tw.SetHeader(data.Headers())
	tw.SetAutoFormatHeaders(true)
	tw.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAlignment(tablewriter.ALIGN_LEFT)
	tw.SetAutoWrapText(false)
	tw.SetBorder(false)
	tw.SetHeaderLine(false)
	tw.SetCenterSeparator("")
	tw.SetColumnSeparator("")
	tw.SetRowSeparator("")
	tw.SetTablePadding("  ")
	tw.SetNoWhiteSpace(true)
	tw.AppendBulk(data.Rows())
	tw.Render()
	return nil
}

// TableData accumulates rows for an ad-hoc table.
type TableData struct {
	headers []string
	rows    [][]string
}

// NewTableData creates an empty table with the given column headers.
func NewTableData(headers ...string) *TableData {
	return &TableData{headers: headers}
}

// AddRow appends one row; cells map positionally to the headers.
func (t *TableData) AddRow(cells ...string) {
	t.rows = append(t.rows, cells)
}

// Headers implements TableRenderer.
func (t *TableData) Headers() []string {
	return t.headers
}

// Rows implements TableRenderer.
func (t *TableData) Rows() [][]string {
	return t.rows
}
