package wikitext

// parseListEndOfLine continues or closes the open lists at a line break.
// The next line's leading markers are matched against the list stack; the
// levels they no longer cover are closed into list nodes.
//
//nolint:revive // function-length,cognitive-complexity: the continuation
// rules and the term disambiguation are one unit
func parseListEndOfLine(s *state) {
	itemEndPosition := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(itemEndPosition)
	s.scanPosition++

	// Table and tag frames count as nesting but not as list levels.
	level := 0
	for _, frame := range s.stack {
		if frame.kind != openTable && frame.kind != openTag {
			break
		}
		level++
	}
	startLevel := level

	termLevel := -1
markers:
	for level < len(s.stack) {
		frame := s.stack[level]
		b := s.byteAt(s.scanPosition)
		switch {
		case frame.kind == openDefinitionList && b == ':',
			frame.kind == openOrderedList && b == '#',
			frame.kind == openUnorderedList && b == '*':
		case frame.kind == openDefinitionList && b == ';':
			if termLevel < 0 {
				termLevel = level
			}
		default:
			break markers
		}
		level++
		s.scanPosition++
	}

	// A term marker not followed by further markers on the same indent
	// continues the term instead of opening a new level.
	if termLevel >= 0 {
		b := s.byteAt(s.scanPosition)
		if level < len(s.stack) || b == '#' || b == '*' || b == ':' || b == ';' {
			s.scanPosition -= level - termLevel
			level = termLevel
			s.warn(WarningDefinitionTermContinuation, s.scanPosition-1, s.scanPosition)
		}
	}

	for level < len(s.stack) {
		frame := s.pop()
		var node Node
		switch frame.kind {
		case openDefinitionList:
			items := frame.definitionItems
			last := &items[len(items)-1]
			last.end = itemEndPosition
			last.nodes = s.nodes
			s.nodes = frame.nodes
			node = &NodeDefinitionList{
				span:  span{start: frame.start, end: itemEndPosition},
				items: items,
			}
		case openOrderedList:
			items := frame.items
			last := &items[len(items)-1]
			last.end = itemEndPosition
			last.nodes = s.nodes
			s.nodes = frame.nodes
			node = &NodeOrderedList{
				span:  span{start: frame.start, end: itemEndPosition},
				items: items,
			}
		case openUnorderedList:
			items := frame.items
			last := &items[len(items)-1]
			last.end = itemEndPosition
			last.nodes = s.nodes
			s.nodes = frame.nodes
			node = &NodeUnorderedList{
				span:  span{start: frame.start, end: itemEndPosition},
				items: items,
			}
		default:
			panic("wikitext: non-list frame above list level")
		}
		s.nodes = append(s.nodes, node)
	}

	s.flushedPosition = s.scanPosition
	switch {
	case parseListItemStart(s):
		for parseListItemStart(s) {
		}
		skipSpaces(s)
	case level > startLevel:
		appendListItem(s, s.stack[level-1], itemEndPosition)
		skipSpaces(s)
	default:
		s.skipEmptyLines()
	}
}

// appendListItem closes the current item of the surviving innermost list
// and starts an empty follow-up item at the consumed marker.
func appendListItem(s *state, frame *openNode, itemEndPosition int) {
	switch frame.kind {
	case openDefinitionList:
		items := frame.definitionItems
		last := &items[len(items)-1]
		last.end = itemEndPosition
		last.nodes = s.nodes
		s.nodes = nil
		itemType := DefinitionListItemTypeDetails
		if s.byteAt(s.scanPosition-1) == ';' {
			itemType = DefinitionListItemTypeTerm
		}
		frame.definitionItems = append(items, DefinitionListItem{
			span:     span{start: s.scanPosition - 1},
			itemType: itemType,
		})
	case openOrderedList, openUnorderedList:
		items := frame.items
		last := &items[len(items)-1]
		last.end = itemEndPosition
		last.nodes = s.nodes
		s.nodes = nil
		frame.items = append(items, ListItem{
			span: span{start: s.scanPosition - 1},
		})
	default:
		panic("wikitext: non-list frame at surviving list level")
	}
}

// parseListItemStart opens a list frame for the marker at the scan
// position and reports whether one was opened. The frame's first item
// starts after the marker.
func parseListItemStart(s *state) bool {
	var frame *openNode
	switch s.byteAt(s.scanPosition) {
	case '#':
		frame = &openNode{
			kind:  openOrderedList,
			items: []ListItem{{span: span{start: s.scanPosition + 1}}},
		}
	case '*':
		frame = &openNode{
			kind:  openUnorderedList,
			items: []ListItem{{span: span{start: s.scanPosition + 1}}},
		}
	case ':':
		frame = &openNode{
			kind: openDefinitionList,
			definitionItems: []DefinitionListItem{{
				span:     span{start: s.scanPosition + 1},
				itemType: DefinitionListItemTypeDetails,
			}},
		}
	case ';':
		frame = &openNode{
			kind: openDefinitionList,
			definitionItems: []DefinitionListItem{{
				span:     span{start: s.scanPosition + 1},
				itemType: DefinitionListItemTypeTerm,
			}},
		}
	default:
		return false
	}
	position := s.scanPosition + 1
	s.pushOpenNode(frame, position)

	return true
}

// skipSpaces advances over tabs and spaces and re-anchors the flush
// cursor.
func skipSpaces(s *state) {
	for {
		b := s.byteAt(s.scanPosition)
		if b != '\t' && b != ' ' {
			break
		}
		s.scanPosition++
	}
	s.flushedPosition = s.scanPosition
}
