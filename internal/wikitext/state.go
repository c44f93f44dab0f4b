package wikitext

// eof is the dispatch value for positions at or past end of input.
const eof = -1

// openNodeKind identifies the grammatical context an open frame is
// building.
type openNodeKind uint8

const (
	openDefinitionList openNodeKind = iota
	openExternalLink
	openHeading
	openLink
	openOrderedList
	openParameter
	openPreformatted
	openTable
	openTag
	openTemplate
	openUnorderedList
)

// openNode is a stack frame for a context under construction. It captures
// the node list of the enclosing context so the parser can restore it when
// the frame closes or rewinds. Only the fields of the frame's kind are
// meaningful.
type openNode struct {
	kind  openNodeKind
	nodes []Node
	start int

	// openDefinitionList
	definitionItems []DefinitionListItem
	// openOrderedList / openUnorderedList
	items []ListItem
	// openHeading
	level int
	// openLink
	namespace Namespace
	target    string
	// openParameter
	parameterName    []Node
	parameterNameSet bool
	parameterDefault []Node
	hasDefault       bool
	// openTag
	tagName string
	// openTemplate
	templateName    []Node
	templateNameSet bool
	parameters      []Parameter
	// openTable
	table *tableBuilder
}

// state is the mutable scanner state of one parse. flushedPosition tracks
// the start of the pending literal run; scanPosition the dispatch cursor.
// flushedPosition <= scanPosition <= len(wikiText) holds throughout.
type state struct {
	flushedPosition int
	nodes           []Node
	scanPosition    int
	stack           []*openNode
	warnings        []Warning
	wikiText        string
}

// byteAt returns the byte at position, or eof past the end of input.
func (s *state) byteAt(position int) int {
	if position < 0 || position >= len(s.wikiText) {
		return eof
	}

	return int(s.wikiText[position])
}

// warn records a warning spanning [start, end).
func (s *state) warn(message WarningMessage, start, end int) {
	s.warnings = append(s.warnings, Warning{
		Start:   start,
		End:     end,
		Message: message,
	})
}

// flush emits the pending literal run up to endPosition as a Text node,
// if non-empty.
func (s *state) flush(endPosition int) {
	s.nodes = flushInto(s.nodes, s.flushedPosition, endPosition, s.wikiText)
}

// flushInto appends a Text node spanning [flushedPosition, endPosition) to
// nodes if the range is non-empty.
func flushInto(nodes []Node, flushedPosition, endPosition int, wikiText string) []Node {
	if endPosition > flushedPosition {
		nodes = append(nodes, &NodeText{
			span:  span{start: flushedPosition, end: endPosition},
			value: wikiText[flushedPosition:endPosition],
		})
	}

	return nodes
}

// top returns the top stack frame, or nil for an empty stack.
func (s *state) top() *openNode {
	if len(s.stack) == 0 {
		return nil
	}

	return s.stack[len(s.stack)-1]
}

// pop removes and returns the top stack frame, or nil for an empty stack.
func (s *state) pop() *openNode {
	if len(s.stack) == 0 {
		return nil
	}
	frame := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]

	return frame
}

// pushOpenNode flushes pending text, moves the current node list into the
// new frame and restarts an empty list at innerStartPosition. The frame's
// start is the current scan position.
func (s *state) pushOpenNode(frame *openNode, innerStartPosition int) {
	scanPosition := s.scanPosition
	s.flush(scanPosition)
	frame.nodes = s.nodes
	frame.start = scanPosition
	s.stack = append(s.stack, frame)
	s.nodes = nil
	s.scanPosition = innerStartPosition
	s.flushedPosition = innerStartPosition
}

// rewind abandons the current context: the enclosing node list is
// restored and scanning resumes one byte past the frame's start so the
// abandoned bytes re-emerge as literal text. If the restored list ends in
// a Text node that started before the frame, that node is removed and the
// flush cursor moved back so the next flush re-emits one merged run.
func (s *state) rewind(nodes []Node, position int) {
	s.scanPosition = position + 1
	s.nodes = nodes
	if length := len(s.nodes); length > 0 {
		if text, ok := s.nodes[length-1].(*NodeText); ok {
			s.nodes = s.nodes[:length-1]
			s.flushedPosition = text.start

			return
		}
	}
	s.flushedPosition = position
}

// skipEmptyLines continues block-level processing after a closed block:
// inside a table the table's own line handler resumes, otherwise the
// beginning-of-line handler runs with no paragraph opportunity.
func (s *state) skipEmptyLines() {
	if top := s.top(); top != nil && top.kind == openTable {
		s.scanPosition--
		parseTableEndOfLine(s, false)

		return
	}
	parseBeginningOfLine(s, noLineBreak)
}

// skipWhitespaceBackwards returns the position backed up over any run of
// tab, newline and space bytes ending at position.
func (s *state) skipWhitespaceBackwards(position int) int {
	return skipWhitespaceBackwards(s.wikiText, position)
}

// skipWhitespaceForwards returns the position advanced over any run of
// tab, newline and space bytes starting at position.
func (s *state) skipWhitespaceForwards(position int) int {
	return skipWhitespaceForwards(s.wikiText, position)
}

func skipWhitespaceBackwards(wikiText string, position int) int {
	for position > 0 {
		switch wikiText[position-1] {
		case '\t', '\n', ' ':
			position--
		default:
			return position
		}
	}

	return position
}

func skipWhitespaceForwards(wikiText string, position int) int {
	for position < len(wikiText) {
		switch wikiText[position] {
		case '\t', '\n', ' ':
			position++
		default:
			return position
		}
	}

	return position
}
