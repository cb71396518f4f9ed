package techjobs

import (
	"fmt"
	"io"
	"techjobs/pkg/csvdb"
)

// PrintJobs writes each row as a framed block of "column: value" lines in
// header order.
func PrintJobs(w io.Writer, rows []csvdb.Row, columns []string) {
	if len(rows) == 0 {
		fmt.Fprintln(w, cNoResults)
		return
	}
	for _, row := range rows {
		fmt.Fprintln(w, cRowSeparator)
		for _, col := range columns {
			fmt.Fprintf(w, "%s: %s\n", col, row[col])
		}
		fmt.Fprintf(w, "%s\n\n", cRowSeparator)
	}
}

func PrintValues(w io.Writer, column string, values []string) {
	fmt.Fprintf(w, "\n*** All %s Values ***\n", column)
	for _, v := range values {
		fmt.Fprintln(w, v)
	}
}
