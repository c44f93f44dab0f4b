package wikitext

// noLineBreak is passed as lineStartPosition when no line break precedes
// the position being processed, disabling paragraph break emission.
const noLineBreak = -1

// parseBeginningOfLine recognizes the block construct starting at the
// scan position: blank lines, preformatted blocks, tables, lists,
// horizontal dividers and headings. lineStartPosition is the position of
// the line break that led here, or noLineBreak; when present it marks
// where a paragraph break may be emitted.
//
//nolint:revive // function-length,cognitive-complexity: line grammar with
// one arm per block construct
func parseBeginningOfLine(s *state, lineStartPosition int) {
	hasLineBreak := false
scan:
	for {
		switch s.byteAt(s.scanPosition) {
		case eof:
			if lineStartPosition == noLineBreak {
				s.flushedPosition = s.scanPosition
			}

			return

		case '\t':
			// A line of only tabs and spaces is blank; anything else on
			// it is ordinary text.
			s.scanPosition++
			for {
				switch s.byteAt(s.scanPosition) {
				case eof, '\n':
					continue scan
				case '\t', ' ':
					s.scanPosition++
				default:
					break scan
				}
			}

		case '\n':
			if hasLineBreak {
				s.warn(WarningRepeatedEmptyLine, s.scanPosition, s.scanPosition+1)
			}
			hasLineBreak = true
			s.scanPosition++

		case ' ':
			s.scanPosition++
			startPosition := s.scanPosition
			for {
				b := s.byteAt(s.scanPosition)
				switch {
				case b == eof:
					return
				case b == '\n':
					continue scan
				case b == '\t' || b == ' ':
					s.scanPosition++
				case b == '{' && s.byteAt(s.scanPosition+1) == '|':
					startTable(s, lineStartPosition)

					return
				default:
					// Indented content: a preformatted block starts
					// after the first space.
					if lineStartPosition != noLineBreak {
						position := s.skipWhitespaceBackwards(lineStartPosition)
						s.flush(position)
					}
					s.flushedPosition = s.scanPosition
					s.pushOpenNode(&openNode{kind: openPreformatted}, startPosition)

					return
				}
			}

		case '#', '*', ':', ';':
			if lineStartPosition != noLineBreak {
				position := s.skipWhitespaceBackwards(lineStartPosition)
				s.flush(position)
			}
			s.flushedPosition = s.scanPosition
			for parseListItemStart(s) {
			}
			skipSpaces(s)

			return

		case '-':
			if s.byteAt(s.scanPosition+1) != '-' ||
				s.byteAt(s.scanPosition+2) != '-' ||
				s.byteAt(s.scanPosition+3) != '-' {
				break scan
			}
			if lineStartPosition != noLineBreak {
				position := s.skipWhitespaceBackwards(lineStartPosition)
				s.flush(position)
			}
			start := s.scanPosition
			s.scanPosition += 4
			for s.byteAt(s.scanPosition) == '-' {
				s.scanPosition++
			}
			s.nodes = append(s.nodes, &NodeHorizontalDivider{
				span: span{start: start, end: s.scanPosition},
			})
		divider:
			for {
				switch s.byteAt(s.scanPosition) {
				case '\t', ' ':
					s.scanPosition++
				case '\n':
					s.scanPosition++
					s.skipEmptyLines()
				default:
					break divider
				}
			}
			s.flushedPosition = s.scanPosition

			return

		case '=':
			if lineStartPosition != noLineBreak {
				position := s.skipWhitespaceBackwards(lineStartPosition)
				s.flush(position)
			}
			parseHeadingStart(s)

			return

		case '{':
			if s.byteAt(s.scanPosition+1) == '|' {
				startTable(s, lineStartPosition)

				return
			}

			break scan

		default:
			break scan
		}
	}
	if lineStartPosition == noLineBreak {
		s.flushedPosition = s.scanPosition

		return
	}
	if hasLineBreak {
		flushPosition := s.skipWhitespaceBackwards(lineStartPosition)
		s.flush(flushPosition)
		s.nodes = append(s.nodes, &NodeParagraphBreak{
			span: span{start: lineStartPosition, end: s.scanPosition},
		})
		s.flushedPosition = s.scanPosition
	}
}

// parseEndOfLine dispatches a line break on the top of the stack. Frames
// that span newlines freely pass through; line-bound frames close or
// rewind.
func parseEndOfLine(s *state) {
	top := s.top()
	if top == nil {
		position := s.scanPosition
		s.scanPosition++
		parseBeginningOfLine(s, position)

		return
	}
	switch top.kind {
	case openDefinitionList, openOrderedList, openUnorderedList:
		parseListEndOfLine(s)
	case openExternalLink:
		parseExternalLinkEndOfLine(s)
	case openHeading:
		parseHeadingEnd(s)
	case openLink, openParameter, openTag, openTemplate:
		s.scanPosition++
	case openPreformatted:
		parsePreformattedEndOfLine(s)
	case openTable:
		parseTableEndOfLine(s, true)
	default:
		panic("wikitext: unhandled open node at end of line")
	}
}

// parsePreformattedEndOfLine continues a preformatted block when the next
// line is indented too, and closes it otherwise. An indented line that
// starts a table or closes an enclosing table ends the block.
func parsePreformattedEndOfLine(s *state) {
	if s.byteAt(s.scanPosition+1) == ' ' {
		position := s.scanPosition + 2
	peek:
		for {
			b := s.byteAt(position)
			switch {
			case b == eof:
				break peek
			case b == '\t' || b == ' ':
				position++
			case b == '{' && s.byteAt(position+1) == '|':
				break peek
			case b == '|' && s.byteAt(position+1) == '}' && underTable(s):
				break peek
			default:
				flushPosition := s.scanPosition + 1
				s.flush(flushPosition)
				s.scanPosition += 2
				s.flushedPosition = s.scanPosition

				return
			}
		}
	}
	frame := s.pop()
	position := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(position)
	s.scanPosition++
	end := s.scanPosition
	if end > len(s.wikiText) {
		end = len(s.wikiText)
	}
	nodes := s.nodes
	s.nodes = frame.nodes
	s.nodes = append(s.nodes, &NodePreformatted{
		span:  span{start: frame.start, end: end},
		nodes: nodes,
	})
	s.skipEmptyLines()
}

// underTable reports whether the frame below the top of the stack is a
// table.
func underTable(s *state) bool {
	if len(s.stack) < 2 {
		return false
	}

	return s.stack[len(s.stack)-2].kind == openTable
}
