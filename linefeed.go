package swiftscan

// InsertLineFeeds returns a copy of data with a '\n' inserted after every k
// bytes. A trailing group shorter than k is copied without a terminator, and
// k == 0 returns an unmodified copy. Useful for synthesizing line-structured
// fixtures from flat byte runs.
//
//	InsertLineFeeds([]byte("ABCDEFGHIJ"), 3) == []byte("ABC\nDEF\nGHI\nJ")
func InsertLineFeeds(data []byte, k int) []byte {
	if k <= 0 {
		out := make([]byte, len(data))
		copy(out, data)
		return out
	}

	out := make([]byte, 0, len(data)+len(data)/k)

	pos := 0
	for pos+k <= len(data) {
		out = append(out, data[pos:pos+k]...)
		out = append(out, '\n')
		pos += k
	}
	return append(out, data[pos:]...)
}
