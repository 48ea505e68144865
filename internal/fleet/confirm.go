package fleet

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

// ErrDeclined is returned when the operator answers no at the prompt.
var ErrDeclined = errors.New("declined by operator")

// InputError reports unusable operator input at the confirmation prompt.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("failed to read confirmation: %v", e.Err)
}

func (e *InputError) Unwrap() error { return e.Err }

// Confirmer blocks until the operator accepts or rejects a plan.
type Confirmer interface {
	Confirm() error
}

// LineConfirmer prompts on Out and reads exactly one line from In.
// Any line accepts the plan except "n" or "no", which return ErrDeclined.
type LineConfirmer struct {
	In  io.Reader
	Out io.Writer
}

// Confirm implements Confirmer.
func (c *LineConfirmer) Confirm() error {
	if _, err := fmt.Fprintln(c.Out, "Press enter to continue..."); err != nil {
		return &InputError{Err: err}
	}

	line, err := bufio.NewReader(c.In).ReadString('\n')
	switch {
	case errors.Is(err, io.EOF) && line == "":
		return &InputError{Err: io.ErrUnexpectedEOF}
	case err != nil && !errors.Is(err, io.EOF):
		return &InputError{Err: err}
	}

	if !utf8.ValidString(line) {
		return &InputError{Err: errors.New("input is not valid UTF-8")}
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "n", "no":
		return ErrDeclined
	}
	return nil
}
