// Package scenario holds titled example invocations of the simulator: the
// built-in sequence the CLI runs by default, and loaders for user-supplied
// sequences in YAML or HCL.
package scenario

import (
	"fmt"

	"github.com/psantana5/filesim/internal/simulator"
)

// ExpectSuccess is the expectation for a call that should succeed.
const ExpectSuccess = "success"

// Scenario is one titled example invocation.
type Scenario struct {
	Title  string  `yaml:"title" json:"title"`
	Name   *string `yaml:"name" json:"name"`
	Data   any     `yaml:"data" json:"data"`
	Expect string  `yaml:"expect,omitempty" json:"expect,omitempty"` // "success", an error kind name, or empty
}

// Request builds the simulator request for this scenario.
func (s Scenario) Request() simulator.Request {
	return simulator.Request{Name: s.Name, Data: s.Data}
}

// Validate checks that the expectation, if any, is a known value.
func (s Scenario) Validate() error {
	if s.Title == "" {
		return fmt.Errorf("scenario has no title")
	}
	if s.Expect == "" || s.Expect == ExpectSuccess {
		return nil
	}
	if _, ok := simulator.ParseErrorKind(s.Expect); !ok {
		return fmt.Errorf("scenario %q: unknown expectation %q", s.Title, s.Expect)
	}
	return nil
}

// Check compares an outcome with the expectation. No expectation always matches.
func (s Scenario) Check(o *simulator.Outcome) error {
	switch s.Expect {
	case "":
		return nil
	case ExpectSuccess:
		if !o.Succeeded() {
			return fmt.Errorf("expected success, got %s", o.Kind())
		}
		return nil
	}
	if o.Succeeded() {
		return fmt.Errorf("expected %s, got success", s.Expect)
	}
	want, ok := simulator.ParseErrorKind(s.Expect)
	if !ok {
		return fmt.Errorf("unknown expectation %q", s.Expect)
	}
	if got := o.Kind(); got != want {
		return fmt.Errorf("expected %s, got %s", want, got)
	}
	return nil
}

// Default returns the fixed sequence of example invocations.
func Default() []Scenario {
	return []Scenario{
		{
			Title:  "Missing file name",
			Expect: simulator.KindMissingName.String(),
		},
		{
			Title:  "Non-string file data",
			Name:   simulator.Name("myFile.txt"),
			Data:   42,
			Expect: simulator.KindInvalidType.String(),
		},
		{
			Title:  "Empty string data",
			Name:   simulator.Name("myFile.txt"),
			Data:   "",
			Expect: simulator.KindEmptyData.String(),
		},
		{
			Title:  "Successful processing",
			Name:   simulator.Name("myFile.txt"),
			Data:   "Hello, world!",
			Expect: ExpectSuccess,
		},
		{
			Title:  "Null file name",
			Data:   "Some data",
			Expect: simulator.KindMissingName.String(),
		},
		{
			Title:  "Whitespace-only data",
			Name:   simulator.Name("document.txt"),
			Data:   "   ",
			Expect: simulator.KindEmptyData.String(),
		},
		{
			Title:  "Valid large file",
			Name:   simulator.Name("library-catalog.txt"),
			Data:   "Book Title: The Great Adventure\nAuthor: Jane Doe\nISBN: 123-456",
			Expect: ExpectSuccess,
		},
	}
}
