package wikitext

import (
	"strings"
)

// parseStartTag handles < followed by a candidate tag name. Extension
// tags open a frame whose content parses normally until the matching end
// tag; other well-formed tags become StartTag nodes; anything else leaves
// the bracket literal.
func parseStartTag(s *state, configuration *Configuration) {
	start := s.scanPosition
	nameStartPosition := start + 1
	nameEndPosition := scanTagName(s, nameStartPosition)
	if nameEndPosition == nameStartPosition {
		s.scanPosition++

		return
	}
	position := nameEndPosition
	for {
		b := s.byteAt(position)
		if b == eof || b == '<' {
			s.scanPosition++

			return
		}
		if b == '>' {
			break
		}
		position++
	}
	name := strings.ToLower(s.wikiText[nameStartPosition:nameEndPosition])
	end := position + 1
	selfClosing := s.byteAt(position-1) == '/'
	if isExtensionTag(configuration, name) {
		if selfClosing {
			s.flush(start)
			s.nodes = append(s.nodes, &NodeTag{
				span: span{start: start, end: end},
				name: name,
			})
			s.scanPosition = end
			s.flushedPosition = end

			return
		}
		s.pushOpenNode(&openNode{
			kind:    openTag,
			tagName: name,
		}, end)

		return
	}
	s.flush(start)
	s.nodes = append(s.nodes, &NodeStartTag{
		span: span{start: start, end: end},
		name: name,
	})
	s.scanPosition = end
	s.flushedPosition = end
}

// parseEndTag handles </. A matching open extension tag frame closes into
// a Tag node; otherwise a well-formed end tag becomes an EndTag node.
func parseEndTag(s *state, configuration *Configuration) {
	start := s.scanPosition
	nameStartPosition := start + 2
	nameEndPosition := scanTagName(s, nameStartPosition)
	if nameEndPosition == nameStartPosition {
		s.scanPosition++

		return
	}
	position := nameEndPosition
	for {
		b := s.byteAt(position)
		if b != '\t' && b != ' ' {
			break
		}
		position++
	}
	if s.byteAt(position) != '>' {
		s.scanPosition++

		return
	}
	name := strings.ToLower(s.wikiText[nameStartPosition:nameEndPosition])
	end := position + 1
	if top := s.top(); top != nil && top.kind == openTag && top.tagName == name {
		frame := s.pop()
		s.flush(start)
		nodes := s.nodes
		s.nodes = frame.nodes
		s.nodes = append(s.nodes, &NodeTag{
			span:  span{start: frame.start, end: end},
			name:  name,
			nodes: nodes,
		})
		s.scanPosition = end
		s.flushedPosition = end

		return
	}
	s.flush(start)
	s.nodes = append(s.nodes, &NodeEndTag{
		span: span{start: start, end: end},
		name: name,
	})
	s.scanPosition = end
	s.flushedPosition = end
}

// scanTagName advances over a tag name and returns the position after
// it. A name starts with an ASCII letter; digits may follow.
func scanTagName(s *state, position int) int {
	b := s.byteAt(position)
	if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') {
		return position
	}
	for {
		position++
		b = s.byteAt(position)
		if (b < 'a' || b > 'z') && (b < 'A' || b > 'Z') && (b < '0' || b > '9') {
			return position
		}
	}
}

// isExtensionTag reports whether name is one of the configured extension
// tag names. The whole name must match, not only a prefix.
func isExtensionTag(configuration *Configuration, name string) bool {
	matchLength, _, ok := configuration.extensionTags.Find(name)

	return ok && matchLength == len(name)
}
