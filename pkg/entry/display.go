package entry

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
)

// PrettyPrintTable writes entries as an id/date/text table, one row each.
func PrettyPrintTable(w io.Writer, entries ...DiaryEntry) {
	if w == nil {
		w = color.Output
	}
	if len(entries) == 0 {
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow("ID", "GAME", "DATE", "ENTRY")
	for _, e := range entries {
		id, date, text := e.Row()
		tbl.AddRow(id, e.Game, date, text)
	}
	_, _ = fmt.Fprintln(w, tbl)
}
