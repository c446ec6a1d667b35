package table

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// ReadError wraps any failure to load or parse an input file. Always fatal:
// no output is written when the source cannot be read.
type ReadError struct {
	Path string
	Err  error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("read %s: %v", e.Path, e.Err)
}

func (e *ReadError) Unwrap() error {
	return e.Err
}

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// delimiter candidates, checked against the header line. Comma wins ties.
var delimiters = []rune{',', ';', '\t', '|'}

// Read loads a delimited text file into a Table. The byte stream is
// decoded as UTF-8 when valid (a leading BOM is stripped), otherwise as
// Windows-1252; the delimiter is sniffed from the header line.
func Read(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	text, err := decode(data)
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}

	r := csv.NewReader(strings.NewReader(text))
	r.Comma = sniffDelimiter(text)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, &ReadError{Path: path, Err: err}
	}
	if len(records) == 0 {
		return nil, &ReadError{Path: path, Err: fmt.Errorf("no header row")}
	}

	header := make([]string, 0, len(records[0]))
	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("column %d has an empty name", i+1)}
		}
		if _, dup := index[name]; dup {
			return nil, &ReadError{Path: path, Err: fmt.Errorf("duplicate column %q", name)}
		}
		index[name] = i
		header = append(header, name)
	}

	return &Table{
		columns: header,
		rows:    records[1:],
		index:   index,
	}, nil
}

// decode turns raw file bytes into a string. Valid UTF-8 passes through
// with any BOM stripped; everything else is treated as Windows-1252, whose
// decoder maps every byte, so legacy exports from spreadsheet tools load
// without an explicit encoding flag.
func decode(data []byte) (string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if utf8.Valid(data) {
		return string(data), nil
	}
	decoded, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), data)
	if err != nil {
		return "", fmt.Errorf("decode windows-1252: %w", err)
	}
	return string(decoded), nil
}

// sniffDelimiter picks the candidate occurring most often in the header
// line. Candidates are checked in fixed order, so comma wins a tie.
func sniffDelimiter(text string) rune {
	header := text
	if i := strings.IndexByte(header, '\n'); i >= 0 {
		header = header[:i]
	}

	best := ','
	bestCount := 0
	for _, d := range delimiters {
		if n := strings.Count(header, string(d)); n > bestCount {
			best = d
			bestCount = n
		}
	}
	return best
}
