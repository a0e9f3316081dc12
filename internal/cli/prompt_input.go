package cli

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// promptLineIO prints message on its own line and returns the next input line.
// Read errors are swallowed: a missing line is treated like an empty one.
func promptLineIO(in *bufio.Reader, out io.Writer, message string) string {
	if out != nil {
		fmt.Fprintln(out, message)
	}
	text, _ := readPromptLine(in)
	return text
}

func promptUint8IO(in *bufio.Reader, out io.Writer, message string) uint8 {
	return parseUint8OrZero(promptLineIO(in, out, message))
}

func promptLoadIO(in *bufio.Reader, out io.Writer, message string) float64 {
	return parseLoadOrZero(promptLineIO(in, out, message))
}

// parseUint8OrZero accepts a decimal integer in 0..255 with an optional
// leading '+'. Anything else is 0.
func parseUint8OrZero(s string) uint8 {
	s = strings.TrimPrefix(strings.TrimSpace(s), "+")
	v, err := strconv.ParseUint(s, 10, 8)
	if err != nil {
		return 0
	}
	return uint8(v)
}

// parseLoadOrZero parses a decimal float; invalid input and NaN become 0.
// Hex floats and digit separators are rejected even though ParseFloat
// understands them. Infinities are kept and clamped later by the formula.
func parseLoadOrZero(s string) float64 {
	s = strings.TrimSpace(s)
	if hasHexPrefix(s) || strings.Contains(s, "_") {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) {
		return 0
	}
	return v
}

func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X")
}

// readPromptLine returns the next LF-terminated line without the LF.
// A CR before the LF stays in the line and is trimmed by the parsers, so
// CRLF input keeps one answer per line. Trailing text at EOF counts as a line.
func readPromptLine(in *bufio.Reader) (string, error) {
	if in == nil {
		return "", io.EOF
	}
	line, err := in.ReadString('\n')
	if err != nil && (err != io.EOF || line == "") {
		return line, err
	}
	return strings.TrimSuffix(line, "\n"), nil
}
