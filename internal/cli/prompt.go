// Package cli implements the console collaborator of the sequence tool: the
// prompt, reading the term count, rendering the sequence and the terminal
// niceties (progress spinner, shell completion) around it.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"

	apperrors "github.com/agbru/fibseq/internal/errors"
	"github.com/agbru/fibseq/internal/fibonacci"
)

// Prompt is written to standard output before the count is read.
const Prompt = "Enter the number of Fibonacci terms to generate: "

// DisplayPrompt writes the prompt without a trailing newline.
func DisplayPrompt(out io.Writer) error {
	_, err := fmt.Fprint(out, Prompt)
	return err
}

// ReadCount reads one whitespace-delimited token from r and parses it as a
// signed base-10 integer.
//
// The whole token must be numeric: "12abc" is rejected rather than read as 12.
// Tokens above fibonacci.MaxTerms are rejected with strconv.ErrRange.
//
// Returns:
//   - int: The parsed count.
//   - error: An apperrors.InputError when no token is available or it does
//     not parse.
func ReadCount(r io.Reader) (int, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	if !scanner.Scan() {
		cause := apperrors.WrapError(scanner.Err(), "reading term count")
		if cause == nil {
			cause = io.EOF
		}
		return 0, apperrors.InputError{Cause: cause}
	}

	token := scanner.Text()
	n, err := strconv.Atoi(token)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) {
			err = numErr.Err
		}
		return 0, apperrors.InputError{Input: token, Cause: err}
	}
	if n > fibonacci.MaxTerms {
		return 0, apperrors.InputError{Input: token, Cause: strconv.ErrRange}
	}
	return n, nil
}
