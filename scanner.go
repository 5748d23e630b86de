package swiftscan

import (
	"bytes"
	"errors"
	"io"
)

const defaultBufferSize = 1 << 12 // 4096 bytes

var (
	// ErrPatternTooLong is returned when the pattern does not fit inside the scan buffer.
	// Carry-over assumes a pattern can always complete within one buffer, so the
	// configuration is rejected before the first read.
	ErrPatternTooLong = errors.New("swiftscan: pattern longer than buffer capacity")

	errNilSource = errors.New("swiftscan: scan source cannot be nil")
)

// Scanner counts lines containing a literal pattern while streaming through a
// fixed-capacity buffer. The zero value scans with a 4KiB buffer and '\n' as
// the line terminator.
type Scanner struct {
	// Capacity is the scan buffer size in bytes. Default is 4096.
	Capacity int
	// LineTerminator is the byte that delimits lines. Default is '\n'.
	LineTerminator byte
}

// NewScanner returns a Scanner with the default buffer capacity and line terminator.
func NewScanner() *Scanner {
	return &Scanner{
		Capacity:       defaultBufferSize,
		LineTerminator: '\n',
	}
}

// Count reads src to exhaustion and returns the number of lines containing
// pattern. A line is counted at most once, and a match that straddles two
// reads is counted exactly once. The buffer is allocated once per call and
// the per-chunk search allocates nothing, so memory use is O(Capacity)
// regardless of the source length.
//
// An empty pattern matches nothing and returns (0, nil) without reading.
// A pattern longer than Capacity returns ErrPatternTooLong before any read.
// Read errors from src abort the scan and are returned verbatim with a zero
// count; a partial match pending at end of stream is silently discarded.
func (s *Scanner) Count(src io.Reader, pattern []byte) (int, error) {
	if src == nil {
		panic(errNilSource.Error())
	}
	if len(pattern) == 0 {
		return 0, nil
	}

	capacity := defaultBufferSize
	term := byte('\n')
	if s != nil {
		if s.Capacity > 0 {
			capacity = s.Capacity
		}
		if s.LineTerminator != 0 {
			term = s.LineTerminator
		}
	}
	if len(pattern) > capacity {
		return 0, ErrPatternTooLong
	}

	buf := make([]byte, capacity)
	count := 0
	carry := 0
	skipping := false

	for {
		n, err := src.Read(buf[carry:])
		if n > 0 {
			filled := carry + n
			carry = 0
			region := buf[:filled]

			// A counted line that ran past the previous fill is still being
			// skipped; its remainder must not be searched.
			if skipping {
				if nl := bytes.IndexByte(region, term); nl < 0 {
					region = nil
				} else {
					region = region[nl+1:]
					skipping = false
				}
			}

			if !skipping {
				c, midLine := countChunk(region, pattern, term)
				count += c
				skipping = midLine
			}

			// Preserve any trailing proper prefix of the pattern so a match
			// split across two reads can complete on the next fill. While a
			// counted line is being skipped its tail bytes cannot start a
			// countable match, so nothing is carried.
			if !skipping {
				start := filled - (len(pattern) - 1)
				if start < 0 {
					start = 0
				}
				for i := start; i < filled; i++ {
					if bytes.HasPrefix(pattern, buf[i:filled]) {
						carry = copy(buf, buf[i:filled])
						break
					}
				}
			}
		}
		if err == io.EOF {
			// Stream exhausted. A dangling carry is shorter than the pattern
			// and can never complete, so it is dropped.
			return count, nil
		}
		if err != nil {
			return 0, err
		}
	}
}

// CountBytes returns the number of lines in data containing pattern. It is
// the whole-buffer companion to Count: no carry-over exists because no read
// boundary exists, and for any input the two produce identical counts. The
// entire input must already be in memory.
func (s *Scanner) CountBytes(data, pattern []byte) int {
	if len(pattern) == 0 {
		return 0
	}
	term := byte('\n')
	if s != nil && s.LineTerminator != 0 {
		term = s.LineTerminator
	}
	count, _ := countChunk(data, pattern, term)
	return count
}

// Count scans src with the default configuration. See Scanner.Count.
func Count(src io.Reader, pattern []byte) (int, error) {
	return (*Scanner)(nil).Count(src, pattern)
}

// CountBytes scans data with the default configuration. See Scanner.CountBytes.
func CountBytes(data, pattern []byte) int {
	return (*Scanner)(nil).CountBytes(data, pattern)
}

// countChunk counts lines in data containing pattern, at most once per line.
// Candidates are located by their first byte, restricted to positions where
// the full pattern still fits, then verified against the pattern tail.
// midLine reports that the last counted line had no terminator before the end
// of data, so the caller must keep skipping it.
func countChunk(data, pattern []byte, term byte) (count int, midLine bool) {
	first := pattern[0]
	tail := pattern[1:]

	i := 0
	for i <= len(data)-len(pattern) {
		rel := bytes.IndexByte(data[i:len(data)-len(pattern)+1], first)
		if rel < 0 {
			break
		}
		i += rel

		if bytes.Equal(data[i+1:i+len(pattern)], tail) {
			count++
			// Skip to the next line so further occurrences on this line are
			// not recounted.
			nl := bytes.IndexByte(data[i:], term)
			if nl < 0 {
				return count, true
			}
			i += nl + 1
		} else {
			i++
		}
	}

	return count, false
}
