package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"

	"github.com/kubev2v/vcfctl/internal/models"
)

const (
	Placeholder    = "-"
	NoDataMessage  = "표시할 Virtual Center 데이터가 없습니다."
	LoadingMessage = "데이터를 불러오는 중입니다..."
)

var headers = []string{"Name", "ID", "Status", "Version", "FQDN"}

// Row is a rendered virtual center, keyed by id or name.
type Row struct {
	Key   string
	Cells []string
}

// Rows converts items into table rows, in server order.
func Rows(items []models.VirtualCenter) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{
			Key: item.Key(),
			Cells: []string{
				orPlaceholder(item.Name),
				orPlaceholder(item.ID),
				orPlaceholder(item.Status),
				orPlaceholder(item.Version),
				orPlaceholder(item.FQDN),
			},
		})
	}
	return rows
}

// VirtualCenters writes the table, or the no data message when items is empty.
func VirtualCenters(w io.Writer, items []models.VirtualCenter) error {
	if len(items) == 0 {
		_, err := fmt.Fprintln(w, NoDataMessage)
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	writeLine(tw, headers)
	for _, row := range Rows(items) {
		writeLine(tw, row.Cells)
	}
	return tw.Flush()
}

// Error writes a message in red.
func Error(w io.Writer, msg string) {
	_, _ = color.New(color.FgRed).Fprintln(w, msg)
}

// Title writes a page heading.
func Title(w io.Writer, title string) {
	_, _ = color.New(color.FgBlue, color.Bold).Fprintln(w, title)
}

func writeLine(w io.Writer, cells []string) {
	for i, c := range cells {
		if i > 0 {
			_, _ = fmt.Fprint(w, "\t")
		}
		_, _ = fmt.Fprint(w, c)
	}
	_, _ = fmt.Fprintln(w)
}

func orPlaceholder(s string) string {
	if s == "" {
		return Placeholder
	}
	return s
}
