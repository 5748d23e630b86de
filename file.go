package swiftscan

import (
	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
)

// CountFile opens path on fsys and streams it through Count, closing the file
// before returning. The count is reported alongside any open, read, or close
// error; a close error is only surfaced when the scan itself succeeded.
func (s *Scanner) CountFile(fsys billy.Basic, path string, pattern []byte) (int, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return 0, err
	}

	count, err := s.Count(f, pattern)
	if cerr := f.Close(); cerr != nil && err == nil {
		return 0, cerr
	}
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountFileBytes loads the entire file at path into memory and counts with
// CountBytes. It trades memory for simplicity and exists to make the
// streaming/whole-file comparison measurable; prefer CountFile for inputs of
// unknown size.
func (s *Scanner) CountFileBytes(fsys billy.Basic, path string, pattern []byte) (int, error) {
	data, err := util.ReadFile(fsys, path)
	if err != nil {
		return 0, err
	}
	return s.CountBytes(data, pattern), nil
}
