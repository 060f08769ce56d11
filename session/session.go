package session

import (
	"errors"
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"bikeshare/config"
	"bikeshare/console"
	"bikeshare/domain/entities/filter"
	"bikeshare/domain/entities/trip"
	"bikeshare/paginator"
	"bikeshare/queryhandlers/factory"
)

const restartQuestion = "\nWould you like to restart? Enter yes or no.\n"

// Prompter collects the filters and answers yes/no questions
type Prompter interface {
	GetFilters() (filter.Selection, error)
	Confirm(question string) (bool, error)
}

// TripLoader loads the trips that match a selection
type TripLoader interface {
	Load(selection filter.Selection, sessionID string) (*trip.Table, error)
}

// Session runs the explore cycle until the user does not want to restart
type Session struct {
	prompter Prompter
	loader   TripLoader
	out      io.Writer
	pageSize int
}

func NewSession(explorerConfig *config.ExplorerConfig, prompter Prompter, tripLoader TripLoader, out io.Writer) *Session {
	return &Session{
		prompter: prompter,
		loader:   tripLoader,
		out:      out,
		pageSize: explorerConfig.PageSize,
	}
}

func (s *Session) getLogMessage(sessionID string, method string, message string, err error) string {
	if err != nil {
		return fmt.Sprintf("[session: %s][method: %s][status: ERROR] %s: %s", sessionID, method, message, err.Error())
	}
	return fmt.Sprintf("[session: %s][method: %s][status: OK] %s", sessionID, method, message)
}

// Run repeats the explore cycle while the user asks to restart. A closed input
// ends the session without error.
func (s *Session) Run() error {
	for {
		restart, err := s.runOnce(uuid.NewString())
		if err != nil {
			if errors.Is(err, console.ErrInputClosed) {
				log.Info("[method: Run] input closed, finishing session")
				return nil
			}
			return err
		}

		if !restart {
			return nil
		}
	}
}

// runOnce explores one selection and returns whether the user wants to restart
func (s *Session) runOnce(sessionID string) (bool, error) {
	selection, err := s.prompter.GetFilters()
	if err != nil {
		return false, err
	}
	log.Info(s.getLogMessage(sessionID, "runOnce", fmt.Sprintf("selection received: %s", selection), nil))

	table, err := s.loader.Load(selection, sessionID)
	if err != nil {
		log.Error(s.getLogMessage(sessionID, "runOnce", "error loading trips", err))
		_, _ = fmt.Fprintf(s.out, "\nUnable to load data for %s: %s\n", selection.City, err.Error())
	} else {
		err = s.report(sessionID, selection, table)
		if err != nil {
			return false, err
		}

		err = paginator.New(table, s.pageSize).Run(s.prompter, s.out)
		if err != nil {
			return false, err
		}
	}

	return s.prompter.Confirm(restartQuestion)
}

func (s *Session) report(sessionID string, selection filter.Selection, table *trip.Table) error {
	_, _ = fmt.Fprintf(s.out, "\nExploring %s: %s trips\n", selection, humanize.Comma(int64(table.Len())))

	if dropped := table.GetMetadata().GetDroppedRecords(); dropped > 0 {
		_, _ = fmt.Fprintf(s.out, "%s malformed records were skipped\n", humanize.Comma(int64(dropped)))
	}

	if table.IsEmpty() {
		_, _ = fmt.Fprintln(s.out, "No trips match the selected filters.")
	}

	for _, handler := range factory.NewQueryHandlers() {
		err := handler.GenerateResponse(table)
		if err != nil {
			log.Error(s.getLogMessage(sessionID, "report", fmt.Sprintf("error generating %s response", handler.GetType()), err))
			return err
		}

		err = handler.SendResponse(s.out)
		if err != nil {
			log.Error(s.getLogMessage(sessionID, "report", fmt.Sprintf("error sending %s response", handler.GetType()), err))
			return err
		}
	}
	return nil
}
