package wikitext

// tableState records what kind of content the table builder is currently
// accumulating.
type tableState uint8

const (
	// tableStateBefore is active between the attribute line and the
	// first row, caption or cell marker.
	tableStateBefore tableState = iota
	// tableStateCaptionFirstLine is the line carrying the |+ token.
	tableStateCaptionFirstLine
	// tableStateCaptionRemainder is a caption's continuation lines.
	tableStateCaptionRemainder
	// tableStateCellFirstLine is the line carrying a | cell token.
	tableStateCellFirstLine
	// tableStateCellRemainder is a cell's continuation lines.
	tableStateCellRemainder
	// tableStateHeadingFirstLine is the line carrying a ! cell token.
	tableStateHeadingFirstLine
	// tableStateHeadingRemainder is a heading cell's continuation lines.
	tableStateHeadingRemainder
	// tableStateRow is the line carrying a |- token.
	tableStateRow
	// tableStateTableAttributes is the opening {| line.
	tableStateTableAttributes
)

// tableBuilder accumulates a table while its frame is open. start is the
// offset of the in-progress element, moved forward at every token.
type tableBuilder struct {
	attributes                []Node
	before                    []Node
	captions                  []TableCaption
	childElementAttributes    []Node
	hasChildElementAttributes bool
	rows                      []TableRow
	start                     int
	state                     tableState
}

// takeChildAttributes consumes the pending attribute block, if any.
func (t *tableBuilder) takeChildAttributes() []Node {
	if !t.hasChildElementAttributes {
		return nil
	}
	attributes := t.childElementAttributes
	if attributes == nil {
		attributes = []Node{}
	}
	t.childElementAttributes = nil
	t.hasChildElementAttributes = false

	return attributes
}

// pushCaption commits content as a caption of the in-progress element.
func (t *tableBuilder) pushCaption(content []Node, end int) {
	t.captions = append(t.captions, TableCaption{
		span:       span{start: t.start, end: end},
		attributes: t.takeChildAttributes(),
		content:    content,
	})
}

// pushCell commits content as a cell of the last row, creating the row if
// none exists yet.
func (t *tableBuilder) pushCell(content []Node, cellType TableCellType, end, rowEnd int) {
	if len(t.rows) == 0 {
		t.rows = append(t.rows, TableRow{
			span: span{start: t.start, end: end},
		})
	}
	row := &t.rows[len(t.rows)-1]
	row.cells = append(row.cells, TableCell{
		span:       span{start: t.start, end: end},
		cellType:   cellType,
		attributes: t.takeChildAttributes(),
		content:    content,
	})
	row.end = rowEnd
}

// tableOf returns the builder of the table frame on top of the stack.
func tableOf(s *state) *tableBuilder {
	top := s.top()
	if top == nil || top.kind != openTable {
		panic("wikitext: table operation without table frame")
	}

	return top.table
}

// startTable opens a table frame at {|. positionBeforeLineBreak carries
// the flush boundary of the preceding line, or noLineBreak.
func startTable(s *state, positionBeforeLineBreak int) {
	if positionBeforeLineBreak != noLineBreak {
		position := s.skipWhitespaceBackwards(positionBeforeLineBreak)
		s.flush(position)
	}
	s.flushedPosition = s.scanPosition
	position := s.scanPosition + 2
	for {
		b := s.byteAt(position)
		if b != '\t' && b != ' ' {
			break
		}
		position++
	}
	s.pushOpenNode(&openNode{
		kind: openTable,
		table: &tableBuilder{
			state: tableStateTableAttributes,
		},
	}, position)
}

// parseTableEndOfLine inspects the first significant byte of the next
// line and either moves the table machine to a new state, closes the
// table, or hands the line to block-level processing.
func parseTableEndOfLine(s *state, paragraphBreakPossible bool) {
	positionBeforeLineBreak := s.scanPosition
	positionAfterLineBreak := positionBeforeLineBreak + 1
	scanPosition := positionAfterLineBreak
	for {
		switch s.byteAt(scanPosition) {
		case '\n':
			scanPosition++
			positionAfterLineBreak = scanPosition
		case '\t', ' ':
			scanPosition++
		case '!':
			changeTableState(s, tableStateHeadingFirstLine,
				positionBeforeLineBreak, scanPosition, scanPosition+1,
				paragraphBreakPossible)

			return
		case '|':
			switch s.byteAt(scanPosition + 1) {
			case '+':
				changeTableState(s, tableStateCaptionFirstLine,
					positionBeforeLineBreak, scanPosition, scanPosition+2,
					paragraphBreakPossible)
			case '-':
				changeTableState(s, tableStateRow,
					positionBeforeLineBreak, scanPosition, scanPosition+2,
					paragraphBreakPossible)
			case '}':
				parseTableEnd(s, positionBeforeLineBreak, scanPosition+2,
					paragraphBreakPossible)
			default:
				changeTableState(s, tableStateCellFirstLine,
					positionBeforeLineBreak, scanPosition, scanPosition+1,
					paragraphBreakPossible)
			}

			return
		default:
			parseTableLineBreak(s, positionBeforeLineBreak,
				positionAfterLineBreak, scanPosition, paragraphBreakPossible)

			return
		}
	}
}

// changeTableState commits the accumulated nodes into the component the
// current state was building, then repositions past the token that caused
// the transition.
func changeTableState(
	s *state,
	target tableState,
	positionBeforeLineBreak int,
	positionBeforeToken int,
	positionAfterToken int,
	paragraphBreakPossible bool,
) {
	for {
		b := s.byteAt(positionAfterToken)
		if b != '\t' && b != ' ' {
			break
		}
		positionAfterToken++
	}
	table := tableOf(s)
	end := s.skipWhitespaceBackwards(positionBeforeLineBreak)
	if paragraphBreakPossible {
		s.flush(end)
	}
	commitTableComponent(s, table, end, positionBeforeLineBreak)
	table.start = positionBeforeToken
	table.state = target
	s.flushedPosition = positionAfterToken
	s.scanPosition = positionAfterToken
}

// commitTableComponent moves the current node list into the table
// component indicated by the builder's state.
func commitTableComponent(s *state, table *tableBuilder, end, positionBeforeLineBreak int) {
	nodes := s.nodes
	s.nodes = nil
	switch table.state {
	case tableStateBefore:
		s.warn(WarningStrayTextInTable, table.start, positionBeforeLineBreak)
		table.before = append(table.before, nodes...)
	case tableStateCaptionFirstLine, tableStateCaptionRemainder:
		table.pushCaption(nodes, end)
	case tableStateCellFirstLine, tableStateCellRemainder:
		table.pushCell(nodes, TableCellTypeOrdinary, end, end)
	case tableStateHeadingFirstLine, tableStateHeadingRemainder:
		table.pushCell(nodes, TableCellTypeHeading, end, positionBeforeLineBreak)
	case tableStateRow:
		table.rows = append(table.rows, TableRow{
			span:       span{start: table.start, end: end},
			attributes: nodes,
		})
	case tableStateTableAttributes:
		table.attributes = nodes
	default:
		panic("wikitext: unknown table state")
	}
}

// parseTableEnd closes the table at |}: the state-appropriate commit runs
// one last time, stray nodes from before the first marker rejoin the
// parent list, and the Table node is emitted.
func parseTableEnd(
	s *state,
	positionBeforeLineBreak int,
	positionAfterToken int,
	paragraphBreakPossible bool,
) {
	frame := s.pop()
	if frame == nil || frame.kind != openTable {
		panic("wikitext: table end without table frame")
	}
	table := frame.table
	if paragraphBreakPossible {
		s.flush(s.skipWhitespaceBackwards(positionBeforeLineBreak))
	}
	commitTableComponent(s, table, positionBeforeLineBreak, positionBeforeLineBreak)
	s.nodes = frame.nodes
	s.scanPosition = positionAfterToken
	s.nodes = append(s.nodes, table.before...)
	s.nodes = append(s.nodes, &NodeTable{
		span:       span{start: frame.start, end: s.scanPosition},
		attributes: table.attributes,
		captions:   table.captions,
		rows:       table.rows,
	})
trailing:
	for {
		switch s.byteAt(s.scanPosition) {
		case '\t', ' ':
			s.scanPosition++
		case '\n':
			s.scanPosition++
			s.skipEmptyLines()
		default:
			break trailing
		}
	}
	s.flushedPosition = s.scanPosition
}

// parseTableLineBreak handles a line break that does not carry a table
// token: first lines upgrade to remainders (with a paragraph break for
// cells and headings), attribute and row lines commit, and block-level
// processing resumes inside the current component.
//
//nolint:revive // function-length: one arm per table state
func parseTableLineBreak(
	s *state,
	positionBeforeLineBreak int,
	positionAfterLineBreak int,
	positionAfterToken int,
	paragraphBreakPossible bool,
) {
	table := tableOf(s)
	switch table.state {
	case tableStateBefore, tableStateCaptionRemainder:
		s.scanPosition = positionAfterToken

	case tableStateCaptionFirstLine:
		table.state = tableStateCaptionRemainder
		if len(s.nodes) == 0 && s.flushedPosition == positionBeforeLineBreak {
			s.flushedPosition = positionAfterToken
		}
		s.scanPosition = positionAfterToken
		if positionAfterToken != positionAfterLineBreak {
			return
		}

	case tableStateCellFirstLine:
		upgradeFirstLine(s, table, tableStateCellRemainder,
			positionBeforeLineBreak, positionAfterLineBreak)

	case tableStateHeadingFirstLine:
		upgradeFirstLine(s, table, tableStateHeadingRemainder,
			positionBeforeLineBreak, positionAfterLineBreak)

	case tableStateCellRemainder, tableStateHeadingRemainder:
		s.scanPosition = positionBeforeLineBreak + 1

	case tableStateTableAttributes:
		s.flush(s.skipWhitespaceBackwards(positionBeforeLineBreak))
		table.attributes = s.nodes
		s.nodes = nil
		table.start = positionAfterToken
		table.state = tableStateBefore
		s.flushedPosition = positionAfterToken
		s.scanPosition = positionAfterToken
		if positionAfterToken != positionAfterLineBreak {
			return
		}

	case tableStateRow:
		s.flush(s.skipWhitespaceBackwards(positionBeforeLineBreak))
		table.rows = append(table.rows, TableRow{
			span:       span{start: table.start, end: positionBeforeLineBreak},
			attributes: s.nodes,
		})
		s.nodes = nil
		table.start = positionAfterToken
		table.state = tableStateBefore
		s.flushedPosition = positionAfterToken
		s.scanPosition = positionAfterToken
		if positionAfterToken != positionAfterLineBreak {
			return
		}

	default:
		panic("wikitext: unknown table state")
	}
	lineStartPosition := noLineBreak
	if paragraphBreakPossible {
		lineStartPosition = positionBeforeLineBreak
	}
	parseBeginningOfLine(s, lineStartPosition)
}

// upgradeFirstLine moves a cell or heading first line to its remainder
// state, separating the lines with a paragraph break.
func upgradeFirstLine(
	s *state,
	table *tableBuilder,
	target tableState,
	positionBeforeLineBreak int,
	positionAfterLineBreak int,
) {
	s.flush(s.skipWhitespaceBackwards(positionBeforeLineBreak))
	s.nodes = append(s.nodes, &NodeParagraphBreak{
		span: span{start: positionBeforeLineBreak, end: positionAfterLineBreak},
	})
	table.start = positionAfterLineBreak
	table.state = target
	s.flushedPosition = positionAfterLineBreak
	s.scanPosition = positionAfterLineBreak
}

// parseInlineToken handles | inside a table: || commits the current
// caption or cell and starts another of the same kind, a single | inside
// a first line splits the attribute segment from the content.
func parseInlineToken(s *state) {
	table := tableOf(s)
	positionBeforeToken := s.scanPosition
	if s.byteAt(positionBeforeToken+1) == '|' {
		switch table.state {
		case tableStateCaptionFirstLine:
			end := s.skipWhitespaceBackwards(positionBeforeToken)
			s.flush(end)
			nodes := s.nodes
			s.nodes = nil
			table.pushCaption(nodes, end)
			advancePastToken(s, table, positionBeforeToken, 2)
		case tableStateCellFirstLine:
			commitInlineCell(s, table, TableCellTypeOrdinary, positionBeforeToken)
		case tableStateHeadingFirstLine:
			commitInlineCell(s, table, TableCellTypeHeading, positionBeforeToken)
		default:
			s.scanPosition += 2
		}

		return
	}
	switch table.state {
	case tableStateCaptionFirstLine, tableStateCellFirstLine, tableStateHeadingFirstLine:
		if table.hasChildElementAttributes {
			s.scanPosition++

			return
		}
		s.flush(s.skipWhitespaceBackwards(positionBeforeToken))
		attributes := s.nodes
		if attributes == nil {
			attributes = []Node{}
		}
		s.nodes = nil
		table.childElementAttributes = attributes
		table.hasChildElementAttributes = true
		advancePastToken(s, table, positionBeforeToken, 1)
	default:
		s.scanPosition++
	}
}

// parseHeadingCell handles !! inside a table's heading first line: the
// current heading cell commits and a new one starts at the token.
func parseHeadingCell(s *state) {
	table := tableOf(s)
	positionBeforeToken := s.scanPosition
	if table.state != tableStateHeadingFirstLine {
		s.scanPosition += 2

		return
	}
	commitInlineCell(s, table, TableCellTypeHeading, positionBeforeToken)
}

// commitInlineCell commits the current cell at an inline token and
// repositions past the two token bytes.
func commitInlineCell(
	s *state,
	table *tableBuilder,
	cellType TableCellType,
	positionBeforeToken int,
) {
	end := s.skipWhitespaceBackwards(positionBeforeToken)
	s.flush(end)
	nodes := s.nodes
	s.nodes = nil
	table.pushCell(nodes, cellType, end, end)
	advancePastToken(s, table, positionBeforeToken, 2)
}

// advancePastToken moves the builder's element start to the token and the
// cursors past the token and any trailing tabs and spaces.
func advancePastToken(s *state, table *tableBuilder, positionBeforeToken, tokenLength int) {
	table.start = positionBeforeToken
	s.scanPosition = positionBeforeToken + tokenLength
	for {
		b := s.byteAt(s.scanPosition)
		if b != '\t' && b != ' ' {
			break
		}
		s.scanPosition++
	}
	s.flushedPosition = s.scanPosition
}
