package paginator

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/trip"
)

const (
	DefaultPageSize = 5

	viewQuestion     = "\nWould you like to view %d rows of individual trip data? Enter yes or no\n"
	continueQuestion = "Do you wish to continue?: "
	noMoreRows       = "No more rows to display."
	indexColumn      = "#"
)

// State of the paginator
type State int

const (
	Idle State = iota
	Paging
)

func (s State) String() string {
	if s == Paging {
		return "paging"
	}
	return "idle"
}

// Confirmer asks a yes/no question
type Confirmer interface {
	Confirm(question string) (bool, error)
}

// Paginator reveals the trips of a table a page at a time, in table order.
// It only moves an offset over the table and never modifies it.
type Paginator struct {
	table    *trip.Table
	pageSize int
	offset   int
	state    State
}

func New(tripTable *trip.Table, pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Paginator{
		table:    tripTable,
		pageSize: pageSize,
		state:    Idle,
	}
}

func (p *Paginator) State() State {
	return p.state
}

func (p *Paginator) Offset() int {
	return p.offset
}

// Next returns the next page of trips. The last page may be shorter than the
// page size. Once every trip was revealed it returns false and goes back to Idle.
func (p *Paginator) Next() ([]*trip.TripData, bool) {
	if p.table == nil || p.offset >= p.table.Len() {
		p.state = Idle
		return nil, false
	}

	p.state = Paging
	end := min(p.offset+p.pageSize, p.table.Len())
	page := make([]*trip.TripData, end-p.offset)
	copy(page, p.table.Trips[p.offset:end])
	p.offset = end
	return page, true
}

// Reset goes back to the first page
func (p *Paginator) Reset() {
	p.offset = 0
	p.state = Idle
}

// Render returns the page as a table with the dataset header. firstIndex is the
// position in the trip table of the first trip of the page.
func (p *Paginator) Render(page []*trip.TripData, firstIndex int) string {
	headers := append([]string{indexColumn}, p.table.Header...)
	rows := make([][]string, 0, len(page))
	for i, tripData := range page {
		row := append([]string{strconv.Itoa(firstIndex + i)}, tripData.Raw...)
		rows = append(rows, row)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Run asks whether to show raw trips and keeps showing pages while the answer
// is affirmative and there are trips left.
func (p *Paginator) Run(confirmer Confirmer, w io.Writer) error {
	defer p.Reset()

	view, err := confirmer.Confirm(fmt.Sprintf(viewQuestion, p.pageSize))
	if err != nil {
		return err
	}

	for view {
		firstIndex := p.offset
		page, ok := p.Next()
		if !ok {
			_, _ = fmt.Fprintln(w, noMoreRows)
			log.Debugf("[method: Run] all %v rows displayed", firstIndex)
			return nil
		}

		_, _ = fmt.Fprintln(w, p.Render(page, firstIndex))
		view, err = confirmer.Confirm(continueQuestion)
		if err != nil {
			return err
		}
	}
	return nil
}
