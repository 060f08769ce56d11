package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	log "github.com/sirupsen/logrus"

	"bikeshare/domain/entities/filter"
	"bikeshare/utils"
)

const (
	greeting      = "Hello! Let's explore some US bikeshare data!"
	cityQuestion  = "Which City would you like to explore? Chicago, New York City, or Washington?: "
	monthQuestion = "Would you like to filter by month, or view all data? (e.g. all, january, february, ... , june): "
	dayQuestion   = "Would you like to filter by day, or view all data? (all, monday, tuesday, ... sunday): "
	separator     = "----------------------------------------"
	defaultAnswer = "yes"
	sorryMessage  = "\nSorry, %s\n\n"

	initialLineSize = 64 * 1024
	maxLineSize     = 1024 * 1024
)

var (
	// ErrInputClosed is returned when the input ends before a question is answered
	ErrInputClosed = errors.New("input closed")

	// ErrInputTooLong is returned when an answer does not fit in maxLineSize bytes
	ErrInputTooLong = errors.New("input line too long")
)

// Prompter asks questions on the console and reads the answers line by line
type Prompter struct {
	scanner            *bufio.Scanner
	out                io.Writer
	affirmativeAnswers []string
}

func NewPrompter(in io.Reader, out io.Writer, affirmativeAnswers []string) *Prompter {
	answers := make([]string, 0, len(affirmativeAnswers))
	for _, answer := range affirmativeAnswers {
		answers = append(answers, utils.NormalizeToken(answer))
	}
	if len(answers) == 0 {
		answers = append(answers, defaultAnswer)
	}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, initialLineSize), maxLineSize)

	return &Prompter{
		scanner:            scanner,
		out:                out,
		affirmativeAnswers: answers,
	}
}

// Ask writes question and returns the next line, lower-cased and trimmed
func (p *Prompter) Ask(question string) (string, error) {
	_, _ = fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		err := p.scanner.Err()
		if errors.Is(err, bufio.ErrTooLong) {
			return "", fmt.Errorf("%w: more than %v bytes", ErrInputTooLong, maxLineSize)
		}
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		return "", ErrInputClosed
	}
	return utils.NormalizeToken(p.scanner.Text()), nil
}

// Confirm asks a yes/no question. Anything that is not an affirmative answer is a no.
func (p *Prompter) Confirm(question string) (bool, error) {
	answer, err := p.Ask(question)
	if err != nil {
		return false, err
	}
	return utils.ContainsString(answer, p.affirmativeAnswers), nil
}

// GetFilters asks for the city, month and day to analyze. An invalid answer is
// reported and the same question is asked again until a valid one is given.
func (p *Prompter) GetFilters() (filter.Selection, error) {
	_, _ = fmt.Fprintln(p.out, greeting)

	city, err := p.askUntilValid(cityQuestion, filter.ValidateCity)
	if err != nil {
		return filter.Selection{}, err
	}

	month, err := p.askUntilValid(monthQuestion, filter.ValidateMonth)
	if err != nil {
		return filter.Selection{}, err
	}

	day, err := p.askUntilValid(dayQuestion, filter.ValidateDay)
	if err != nil {
		return filter.Selection{}, err
	}

	selection, err := filter.NewSelection(city, month, day)
	if err != nil {
		return filter.Selection{}, err
	}

	_, _ = fmt.Fprintln(p.out, separator)
	return selection, nil
}

func (p *Prompter) askUntilValid(question string, validate func(string) (string, error)) (string, error) {
	for {
		answer, err := p.Ask(question)
		if err != nil {
			return "", err
		}

		valid, err := validate(answer)
		if err == nil {
			return valid, nil
		}

		log.Debugf("[method: askUntilValid] rejected answer %q: %s", answer, err.Error())
		_, _ = fmt.Fprintf(p.out, sorryMessage, strings.TrimSpace(err.Error()))
	}
}
