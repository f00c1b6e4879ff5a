package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// readPassword is a test seam for term.ReadPassword.
var readPassword = term.ReadPassword

// readLine returns the next line without its CR/LF. A final line without a
// newline is returned with a nil error; io.EOF is reported only when nothing
// was left to read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	line = strings.TrimRight(line, "\r\n")
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return line, nil
}

// readBlock collects lines until an empty one or the end of input.
func readBlock(reader *bufio.Reader) []string {
	lines := make([]string, 0)
	for {
		line, err := readLine(reader)
		if err != nil || line == "" {
			return lines
		}
		lines = append(lines, line)
	}
}

// GetSimpleText writes prompt followed by a "> " marker and returns one
// trimmed line of input.
func GetSimpleText(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n> ", prompt); err != nil {
		return "", err
	}
	line, err := readLine(reader)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// GetPassword reads a password from the terminal without echo. The caller
// owns the returned slice and should wipe it.
func GetPassword(w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, "Enter password: "); err != nil {
		return nil, err
	}
	pw, err := readPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

// GetMultiline reads a note or message body: lines up to the first empty
// one, joined with '\n' and trimmed.
func GetMultiline(reader *bufio.Reader, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(press Enter on an empty line to finish)\n", prompt); err != nil {
		return "", err
	}
	return strings.TrimSpace(strings.Join(readBlock(reader), "\n")), nil
}

// GetLines reads checklist entries, one per line, up to the first empty
// line. Entries keep their surrounding spaces.
func GetLines(reader *bufio.Reader, prompt string, w io.Writer) ([]string, error) {
	if _, err := fmt.Fprintf(w, "%s\n(empty line to finish)\n", prompt); err != nil {
		return nil, err
	}
	return readBlock(reader), nil
}
