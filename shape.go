package swiftscan

// Shape summarizes the structure of a CSV buffer: how many fields and rows it
// contains. Quoted fields may hold literal commas, line breaks, and escaped
// quotes without affecting the counts.
type Shape struct {
	Fields int
	Rows   int
}

// ShapeOf counts the fields and rows of a CSV buffer in a single quote-aware
// pass. It is a structural counter, not a parser: field contents are never
// materialized. Every unquoted comma ends a field and every unquoted newline
// ends a field and a row, so empty fields count; input without a trailing
// newline still ends its final field and row. Content after an unterminated
// quote is not counted.
func ShapeOf(data []byte) Shape {
	var shape Shape
	inQuotes := false
	fieldStarted := false

	i := 0
	for i < len(data) {
		switch data[i] {
		case '"':
			if inQuotes {
				if i+1 < len(data) && data[i+1] == '"' {
					i++ // escaped quote
				} else {
					inQuotes = false
				}
			} else if !fieldStarted {
				inQuotes = true
			}
			// A quote after field content is literal.
			fieldStarted = true
		case ',':
			if !inQuotes {
				shape.Fields++
				fieldStarted = false
			}
		case '\n':
			if !inQuotes {
				shape.Fields++
				shape.Rows++
				fieldStarted = false
			}
		default:
			fieldStarted = true
		}
		i++
	}

	if fieldStarted && !inQuotes {
		shape.Fields++
		shape.Rows++
	}

	return shape
}

// Table-driven alternative kept for benchmarking against ShapeOf. The two are
// fuzz-checked for identical results.

const (
	stateFieldStart = iota
	stateUnquoted
	stateQuoted
	stateQuoteInQuoted
	stateEnd
)

const (
	classComma = iota
	classNewline
	classQuote
	classSentinel
	classOther
)

var byteClasses = buildByteClasses()

func buildByteClasses() [256]uint8 {
	var classes [256]uint8
	for i := range classes {
		classes[i] = classOther
	}
	classes[','] = classComma
	classes['\n'] = classNewline
	classes['"'] = classQuote
	classes[0] = classSentinel
	return classes
}

// shapeTransitions maps [state][byte class] to the next state.
var shapeTransitions = [4][5]uint8{
	stateFieldStart:    {stateFieldStart, stateFieldStart, stateQuoted, stateEnd, stateUnquoted},
	stateUnquoted:      {stateFieldStart, stateFieldStart, stateUnquoted, stateEnd, stateUnquoted},
	stateQuoted:        {stateQuoted, stateQuoted, stateQuoteInQuoted, stateEnd, stateQuoted},
	stateQuoteInQuoted: {stateFieldStart, stateFieldStart, stateQuoted, stateEnd, stateUnquoted},
}

// shapeActions packs the counter updates per transition: bit 0 increments the
// field count, bit 1 the row count.
var shapeActions = [4][5]uint8{
	stateFieldStart:    {1, 3, 0, 0, 0},
	stateUnquoted:      {1, 3, 0, 3, 0},
	stateQuoted:        {0, 0, 0, 0, 0},
	stateQuoteInQuoted: {1, 3, 0, 3, 0},
}

// shapeOfTable runs the sentinel-terminated DFA. The one-time copy appends a
// zero byte so the hot loop needs no bounds check on the position, only the
// terminal-state test.
func shapeOfTable(data []byte) Shape {
	if len(data) == 0 {
		return Shape{}
	}

	buf := make([]byte, len(data)+1)
	copy(buf, data)

	var shape Shape
	state := uint8(stateFieldStart)

	for i := 0; ; i++ {
		class := byteClasses[buf[i]]
		action := shapeActions[state][class]
		shape.Fields += int(action & 1)
		shape.Rows += int(action >> 1 & 1)

		state = shapeTransitions[state][class]
		if state == stateEnd {
			break
		}
	}

	return shape
}
