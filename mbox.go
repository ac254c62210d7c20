package phishtriage

import (
	"errors"
	"fmt"
	"io"

	"github.com/emersion/go-mbox"
)

// ReadMbox parses every message of an mbox stream and calls fn with its
// zero-based index. Reading stops at the first error from the stream, from
// parsing or from fn.
func ReadMbox(r io.Reader, fn func(i int, mail *Mail) error) error {
	mr := mbox.NewReader(r)

	for i := 0; ; i++ {
		msg, err := mr.NextMessage()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("phishtriage: reading mbox message %d: %w", i, err)
		}

		mail, err := ReadMail(msg)
		if err != nil {
			return fmt.Errorf("phishtriage: parsing mbox message %d: %w", i, err)
		}

		if err := fn(i, mail); err != nil {
			return err
		}
	}
}
