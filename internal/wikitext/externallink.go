package wikitext

// parseExternalLinkStart handles [ when no second [ follows. The byte
// after the bracket must start a recognized URL protocol, otherwise the
// bracket is literal.
func parseExternalLinkStart(s *state, configuration *Configuration) {
	schemeStartPosition := s.scanPosition + 1
	_, _, ok := configuration.protocols.Find(s.wikiText[schemeStartPosition:])
	if !ok {
		s.scanPosition = schemeStartPosition

		return
	}
	s.pushOpenNode(&openNode{kind: openExternalLink}, schemeStartPosition)
}

// parseExternalLinkEnd closes an external link frame at ].
func parseExternalLinkEnd(s *state, startPosition int, parentNodes []Node) {
	scanPosition := s.scanPosition
	s.flush(scanPosition)
	s.scanPosition++
	s.flushedPosition = s.scanPosition
	nodes := s.nodes
	s.nodes = parentNodes
	s.nodes = append(s.nodes, &NodeExternalLink{
		span:  span{start: startPosition, end: s.scanPosition},
		nodes: nodes,
	})
}

// parseExternalLinkEndOfLine rewinds an external link frame that reached
// a line break before closing.
func parseExternalLinkEndOfLine(s *state) {
	end := s.scanPosition
	frame := s.pop()
	s.warn(WarningInvalidLinkSyntax, frame.start, end)
	s.rewind(frame.nodes, frame.start)
}
