package queryresponse

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
)

const (
	NoDataMessage = "No data available"
	separator     = "----------------------------------------"
)

var titleStyle = lipgloss.NewStyle().Bold(true)

// QueryResponse contains the response of a query, ready to be displayed
// + QueryID: ID of the query that generated the response
// + Title: heading shown before the lines of the response
// + Lines: text lines of the response
// + Elapsed: time spent generating the response
type QueryResponse struct {
	QueryID string        `json:"query_id"`
	Title   string        `json:"title"`
	Lines   []string      `json:"lines"`
	Elapsed time.Duration `json:"elapsed"`
}

func NewQueryResponse(queryID string, title string) *QueryResponse {
	return &QueryResponse{
		QueryID: queryID,
		Title:   title,
	}
}

func (qr *QueryResponse) GetQueryID() string {
	return qr.QueryID
}

func (qr *QueryResponse) AddLine(format string, args ...any) {
	qr.Lines = append(qr.Lines, fmt.Sprintf(format, args...))
}

func (qr *QueryResponse) SetElapsed(elapsed time.Duration) {
	qr.Elapsed = elapsed
}

// String renders the response the same way it is written to the console
func (qr *QueryResponse) String() string {
	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(titleStyle.Render(qr.Title))
	sb.WriteString("\n\n")
	for _, line := range qr.Lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	sb.WriteString(fmt.Sprintf("\nThis took %v seconds.\n", qr.Elapsed.Seconds()))
	sb.WriteString(separator)
	sb.WriteString("\n")
	return sb.String()
}

func (qr *QueryResponse) Write(w io.Writer) error {
	_, err := io.WriteString(w, qr.String())
	return err
}
