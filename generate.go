package swiftscan

import (
	"bufio"
	"errors"
	"io"
	"strconv"
)

var (
	errNilGenerator      = errors.New("swiftscan: generator is nil")
	errGeneratorNoTarget = errors.New("swiftscan: generator destination cannot be nil")
)

var (
	rosterNames = []string{
		"Alice", "Bob", "Carol", "Dave", "Eve", "Frank", "Grace", "Heidi",
		"Ivan", "Judy", "Mallory", "Olivia", "Peggy", "Rupert", "Sybil", "Trent",
	}
	rosterUniversities = []string{
		"MIT", "Harvard", "Stanford", "Yale", "Princeton",
		"Columbia", "Cornell", "Brown", "Dartmouth", "Penn",
	}
	rosterMajors = []string{"Computer Science", "Mathematics", "Physics"}
)

// Generator emits synthetic CSV rows for benchmarks and boundary tests.
type Generator struct {
	dst *bufio.Writer

	// UseCRLF writes rows terminated with \r\n when set.
	UseCRLF bool
	// AlwaysQuote forces quoting for all fields when enabled.
	AlwaysQuote bool

	err error
}

// NewGenerator creates a Generator with internal buffering tuned for bulk writes.
func NewGenerator(w io.Writer) *Generator {
	if w == nil {
		panic(errGeneratorNoTarget.Error())
	}
	return &Generator{
		dst: bufio.NewWriterSize(w, defaultBufferSize),
	}
}

// WriteRow emits a single CSV row terminated with the configured newline
// sequence. Fields containing a comma, quote, or line break are quoted.
func (g *Generator) WriteRow(fields ...string) error {
	if g == nil {
		return errNilGenerator
	}
	if g.dst == nil {
		return errGeneratorNoTarget
	}
	if g.err != nil {
		return g.err
	}

	for i := range fields {
		if i > 0 {
			if err := g.dst.WriteByte(','); err != nil {
				g.err = err
				return err
			}
		}
		if err := g.writeField(fields[i]); err != nil {
			g.err = err
			return err
		}
	}

	if g.UseCRLF {
		if _, err := g.dst.Write([]byte{'\r', '\n'}); err != nil {
			g.err = err
			return err
		}
	} else {
		if err := g.dst.WriteByte('\n'); err != nil {
			g.err = err
			return err
		}
	}
	return nil
}

// WriteRoster emits a Name,University,Year,GPA,Major header followed by n
// deterministic data rows cycling through fixed name and university tables.
// The output is reproducible, so tests can predict exact match counts.
func (g *Generator) WriteRoster(n int) error {
	if g == nil {
		return errNilGenerator
	}
	if err := g.WriteRow("Name", "University", "Year", "GPA", "Major"); err != nil {
		return err
	}

	for i := 0; i < n; i++ {
		name := rosterNames[i%len(rosterNames)]
		university := rosterUniversities[i%len(rosterUniversities)]
		year := strconv.Itoa(2020 + i%5)
		gpa := strconv.FormatFloat(3.0+float64(i%10)/10.0, 'f', 2, 64)
		major := rosterMajors[i%len(rosterMajors)]

		if err := g.WriteRow(name, university, year, gpa, major); err != nil {
			return err
		}
	}
	return nil
}

// Flush flushes pending buffered data to the underlying writer.
func (g *Generator) Flush() error {
	if g == nil {
		return errNilGenerator
	}
	if g.dst == nil {
		return errGeneratorNoTarget
	}
	if g.err != nil {
		return g.err
	}
	if err := g.dst.Flush(); err != nil {
		g.err = err
		return err
	}
	return nil
}

// Error reports the first error encountered by the generator.
func (g *Generator) Error() error {
	if g == nil {
		return errNilGenerator
	}
	return g.err
}

func (g *Generator) writeField(field string) error {
	needsQuote := g.AlwaysQuote
	if !needsQuote {
		needsQuote = fieldNeedsQuote(field)
	}
	if !needsQuote {
		_, err := g.dst.WriteString(field)
		return err
	}
	if err := g.dst.WriteByte('"'); err != nil {
		return err
	}

	start := 0
	for i := 0; i < len(field); i++ {
		if field[i] == '"' {
			if start < i {
				if _, err := g.dst.WriteString(field[start:i]); err != nil {
					return err
				}
			}
			if _, err := g.dst.Write([]byte{'"', '"'}); err != nil {
				return err
			}
			start = i + 1
		}
	}
	if start < len(field) {
		if _, err := g.dst.WriteString(field[start:]); err != nil {
			return err
		}
	}
	return g.dst.WriteByte('"')
}

func fieldNeedsQuote(field string) bool {
	for i := 0; i < len(field); i++ {
		switch field[i] {
		case '"', ',', '\n', '\r':
			return true
		}
	}
	return false
}
