package intake

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jonathan/proposal-studio/internal/types"
)

// Interview drives a Collector over a line-oriented terminal session.
type Interview struct {
	in  *bufio.Scanner
	out io.Writer
	c   *Collector
}

// NewInterview reads answers from in and writes questions to out.
func NewInterview(in io.Reader, out io.Writer) *Interview {
	return &Interview{in: bufio.NewScanner(in), out: out, c: NewCollector()}
}

// Run asks every question and returns the submitted intake.
// A step whose gate fails is asked again; io.ErrUnexpectedEOF is returned if input runs out.
func (iv *Interview) Run() (types.IntakeData, error) {
	for {
		iv.printf("\nStep %d of %d: %s\n", int(iv.c.Step()), Steps, iv.c.Step().Title())

		var err error
		switch iv.c.Step() {
		case StepBasics:
			err = iv.basics()
		case StepLogistics:
			err = iv.logistics()
		case StepStyle:
			data, styleErr := iv.style()
			if styleErr == nil {
				return data, nil
			}
			err = styleErr
		}

		if errors.Is(err, io.ErrUnexpectedEOF) {
			return types.IntakeData{}, err
		}
		if err != nil {
			iv.printf("%v\n", err)
		}
	}
}

func (iv *Interview) basics() error {
	name, err := iv.ask("Couple names")
	if err != nil {
		return err
	}
	email, err := iv.ask("Email")
	if err != nil {
		return err
	}
	date, err := iv.ask("Event date or season")
	if err != nil {
		return err
	}
	location, err := iv.ask("Location")
	if err != nil {
		return err
	}
	iv.c.SetBasics(name, email, date, location)
	return iv.c.Next()
}

func (iv *Interview) logistics() error {
	guests, err := iv.choose("Guest count", types.GuestCountBands)
	if err != nil {
		return err
	}
	budget, err := iv.choose("Budget", types.BudgetBands)
	if err != nil {
		return err
	}
	iv.c.SetLogistics(guests, budget)
	return iv.c.Next()
}

func (iv *Interview) style() (types.IntakeData, error) {
	for i, tag := range types.VibeTags {
		iv.printf("  %2d) %s\n", i+1, tag)
	}
	answer, err := iv.ask("Vibe tags (numbers or names, comma separated)")
	if err != nil {
		return types.IntakeData{}, err
	}
	for _, tag := range iv.c.Tags() {
		_ = iv.c.ToggleTag(tag)
	}
	for _, field := range strings.Split(answer, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		tag := resolve(field, types.VibeTags)
		if err := iv.c.ToggleTag(tag); err != nil {
			iv.printf("%v\n", err)
		}
	}

	notes, err := iv.ask("Notes (optional)")
	if err != nil {
		return types.IntakeData{}, err
	}
	iv.c.SetNotes(notes)
	return iv.c.Submit()
}

func (iv *Interview) choose(label string, options []string) (string, error) {
	for i, opt := range options {
		iv.printf("  %d) %s\n", i+1, opt)
	}
	answer, err := iv.ask(label)
	if err != nil {
		return "", err
	}
	return resolve(answer, options), nil
}

// resolve maps a 1-based option number to its value; anything else is returned unchanged.
func resolve(answer string, options []string) string {
	if n, err := strconv.Atoi(answer); err == nil && n >= 1 && n <= len(options) {
		return options[n-1]
	}
	return answer
}

func (iv *Interview) ask(label string) (string, error) {
	iv.printf("%s: ", label)
	if !iv.in.Scan() {
		if err := iv.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}
	return strings.TrimSpace(iv.in.Text()), nil
}

func (iv *Interview) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(iv.out, format, args...)
}
