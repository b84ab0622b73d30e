package input

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"nbcli/core/apperr"
)

// RenamePair is one line of a rename mapping file.
type RenamePair struct {
	OldName string
	NewName string
	// Line is the 1-based line number in the source file.
	Line int
}

// CheckReadable verifies that path can be opened for reading.
func CheckReadable(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return apperr.FileNotFound(path, err)
	}
	return f.Close()
}

// ReadIdentifiers reads one trimmed identifier per line from path.
func ReadIdentifiers(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.FileNotFound(path, err)
	}
	defer f.Close()

	ids, err := ParseIdentifiers(f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return ids, nil
}

// ParseIdentifiers reads one trimmed identifier per line from r, skipping blank lines.
func ParseIdentifiers(r io.Reader) ([]string, error) {
	var ids []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		ids = append(ids, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

// ReadRenamePairs reads a tab-separated OLD_NAME<TAB>NEW_NAME file.
func ReadRenamePairs(path string) ([]RenamePair, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, apperr.FileNotFound(path, err)
	}
	defer f.Close()

	return ParseRenamePairs(f)
}

// ParseRenamePairs parses tab-separated rename pairs from r. Blank lines are
// skipped; a line without both names is a user input error.
func ParseRenamePairs(r io.Reader) ([]RenamePair, error) {
	reader := csv.NewReader(r)
	reader.Comma = '\t'
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true
	reader.TrimLeadingSpace = true

	var pairs []RenamePair
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, apperr.UserInput("rename file: %v", err)
		}
		line, _ := reader.FieldPos(0)

		fields := make([]string, 0, 2)
		for _, f := range record {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
		switch {
		case len(fields) == 0:
			continue
		case len(fields) == 1:
			return nil, apperr.UserInput("rename file line %d: expected OLD_NAME<TAB>NEW_NAME, got %q", line, fields[0])
		case len(fields) > 2:
			return nil, apperr.UserInput("rename file line %d: expected 2 fields, got %d", line, len(fields))
		}
		pairs = append(pairs, RenamePair{OldName: fields[0], NewName: fields[1], Line: line})
	}
	return pairs, nil
}
