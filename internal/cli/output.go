// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     Examples: [DisplaySequence], [DisplayQuietSequence], [DisplayPrompt].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatSequence], [FormatExecutionDuration].

package cli

import (
	"bufio"
	"io"
	"strconv"
	"strings"
)

// Heading precedes the values line in the default output.
const Heading = "Fibonacci sequence:"

// FormatSequence joins the terms with single spaces. An empty sequence
// yields an empty string.
func FormatSequence(seq []uint64) string {
	var b strings.Builder
	for i, v := range seq {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.FormatUint(v, 10))
	}
	return b.String()
}

// DisplaySequence writes the heading line followed by the values line.
// An empty sequence produces an empty values line.
func DisplaySequence(out io.Writer, seq []uint64) error {
	w := bufio.NewWriter(out)
	w.WriteString(Heading)
	w.WriteByte('\n')
	writeValues(w, seq)
	return w.Flush()
}

// DisplayQuietSequence writes only the values line, for scripting.
func DisplayQuietSequence(out io.Writer, seq []uint64) error {
	w := bufio.NewWriter(out)
	writeValues(w, seq)
	return w.Flush()
}

// writeValues streams the values line so long sequences are not built up as
// one string first.
func writeValues(w *bufio.Writer, seq []uint64) {
	var buf [20]byte
	for i, v := range seq {
		if i > 0 {
			w.WriteByte(' ')
		}
		w.Write(strconv.AppendUint(buf[:0], v, 10))
	}
	w.WriteByte('\n')
}
