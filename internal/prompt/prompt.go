package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"fpl-recommend/internal/model"
)

const (
	positionPrompt = "Enter position (1=GK, 2=DEF, 3=MID, 4=FWD) or leave blank for all: "
	maxPricePrompt = "Enter maximum price per player (in million, e.g., 7.5) or leave blank for no limit: "
)

// Input holds the optional filters. Nil means the user left it blank.
type Input struct {
	Position *model.Position
	MaxPrice *float64
}

// ParseError is non-blank input that is not a number of the expected kind.
type ParseError struct {
	Field string
	Value string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid %s %q: %v", e.Field, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Collector asks for the filters on Out and reads answers line by line from In.
type Collector struct {
	In  io.Reader
	Out io.Writer

	scanner *bufio.Scanner
}

func (c *Collector) Collect() (Input, error) {
	var in Input

	raw, err := c.ask(positionPrompt)
	if err != nil {
		return Input{}, err
	}
	if in.Position, err = ParsePosition(raw); err != nil {
		return Input{}, err
	}

	raw, err = c.ask(maxPricePrompt)
	if err != nil {
		return Input{}, err
	}
	if in.MaxPrice, err = ParseMaxPrice(raw); err != nil {
		return Input{}, err
	}
	return in, nil
}

// ask prints the prompt and returns the next line. EOF counts as a blank answer.
func (c *Collector) ask(prompt string) (string, error) {
	if c.scanner == nil {
		c.scanner = bufio.NewScanner(c.In)
	}
	if _, err := io.WriteString(c.Out, prompt); err != nil {
		return "", err
	}
	if c.scanner.Scan() {
		return c.scanner.Text(), nil
	}
	if err := c.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", nil
}

// ParsePosition converts a position answer. Blank is unset. The value is
// not range-checked.
func ParsePosition(raw string) (*model.Position, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, &ParseError{Field: "position", Value: s, Err: err}
	}
	pos := model.Position(v)
	return &pos, nil
}

// ParseMaxPrice converts a price answer in millions. Blank is unset.
func ParseMaxPrice(raw string) (*float64, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil, &ParseError{Field: "max price", Value: s, Err: err}
	}
	return &v, nil
}

// Fixed answers Collect with preset values, for non-interactive runs.
type Fixed Input

func (f Fixed) Collect() (Input, error) {
	return Input(f), nil
}
