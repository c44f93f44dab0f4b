package wikitext

import (
	"strings"
	"unicode/utf8"
)

// parseLinkStart handles [[. A link nested in another link (except inside
// a File link's caption) invalidates the outer link, which is rewound and
// re-scanned. Otherwise the target is scanned up to |, ]] or a terminator
// that makes the link ill-formed.
func parseLinkStart(s *state, configuration *Configuration) {
	if top := s.top(); top != nil && top.kind == openLink && top.namespace != NamespaceFile {
		frame := s.pop()
		s.warn(WarningInvalidLinkSyntax, frame.start, s.scanPosition)
		s.rewind(frame.nodes, frame.start)

		return
	}

	targetStartPosition := s.skipWhitespaceForwards(s.scanPosition + 2)
	namespace := NamespaceNone
	contentStartPosition := targetStartPosition
	matchLength, value, ok := configuration.namespaces.Find(s.wikiText[targetStartPosition:])
	if ok {
		namespace = value
		contentStartPosition = targetStartPosition + matchLength
	}
	targetEndPosition := targetStartPosition + matchLength
	for {
		switch s.byteAt(targetEndPosition) {
		case eof, '\n', '[', '{', '}':
			parseUnexpectedLinkEnd(s, targetEndPosition)

			return
		case ']':
			parseClosedLink(s, configuration, contentStartPosition, targetEndPosition, namespace)

			return
		case '|':
			s.pushOpenNode(&openNode{
				kind:      openLink,
				namespace: namespace,
				target:    trimTargetRight(s.wikiText[contentStartPosition:targetEndPosition]),
			}, targetEndPosition+1)

			return
		default:
			targetEndPosition++
		}
	}
}

// parseLinkEnd closes a [[target|...]] frame at ]]. For plain links the
// link trail after the brackets is absorbed into the display text.
func parseLinkEnd(s *state, configuration *Configuration, frame *openNode) {
	innerEndPosition := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(innerEndPosition)
	s.scanPosition += 2
	s.flushedPosition = s.scanPosition
	text := s.nodes
	s.nodes = frame.nodes
	end := s.scanPosition
	switch frame.namespace {
	case NamespaceCategory:
		s.nodes = append(s.nodes, &NodeCategory{
			span:    span{start: frame.start, end: end},
			target:  frame.target,
			ordinal: text,
		})
	case NamespaceFile:
		s.nodes = append(s.nodes, &NodeImage{
			span:   span{start: frame.start, end: end},
			target: frame.target,
			text:   text,
		})
	case NamespaceNone:
		trailEndPosition := absorbLinkTrail(s, configuration, end)
		if trailEndPosition > end {
			text = append(text, &NodeText{
				span:  span{start: end, end: trailEndPosition},
				value: s.wikiText[end:trailEndPosition],
			})
			s.scanPosition = trailEndPosition
			s.flushedPosition = trailEndPosition
		}
		s.nodes = append(s.nodes, &NodeLink{
			span:   span{start: frame.start, end: trailEndPosition},
			target: frame.target,
			text:   text,
		})
	default:
		panic("wikitext: unknown namespace on link frame")
	}
}

// parseClosedLink emits a link that closes directly at ]] with no |
// segment.
func parseClosedLink(
	s *state,
	configuration *Configuration,
	targetStartPosition int,
	targetEndPosition int,
	namespace Namespace,
) {
	if s.byteAt(targetEndPosition+1) != ']' {
		parseUnexpectedLinkEnd(s, targetEndPosition)

		return
	}
	startPosition := s.scanPosition
	s.flush(startPosition)
	trailStartPosition := targetEndPosition + 2
	trailEndPosition := trailStartPosition
	target := trimTargetRight(s.wikiText[targetStartPosition:targetEndPosition])
	switch namespace {
	case NamespaceCategory:
		s.nodes = append(s.nodes, &NodeCategory{
			span:   span{start: startPosition, end: trailEndPosition},
			target: target,
		})
	case NamespaceFile:
		s.nodes = append(s.nodes, &NodeImage{
			span:   span{start: startPosition, end: trailEndPosition},
			target: target,
		})
	case NamespaceNone:
		trailEndPosition = absorbLinkTrail(s, configuration, trailStartPosition)
		text := []Node{&NodeText{
			span:  span{start: targetStartPosition, end: targetEndPosition},
			value: s.wikiText[targetStartPosition:targetEndPosition],
		}}
		if trailEndPosition > trailStartPosition {
			text = append(text, &NodeText{
				span:  span{start: trailStartPosition, end: trailEndPosition},
				value: s.wikiText[trailStartPosition:trailEndPosition],
			})
		}
		s.nodes = append(s.nodes, &NodeLink{
			span:   span{start: startPosition, end: trailEndPosition},
			target: target,
			text:   text,
		})
	default:
		panic("wikitext: unknown namespace on closed link")
	}
	s.flushedPosition = trailEndPosition
	s.scanPosition = trailEndPosition
}

// parseUnexpectedLinkEnd records an ill-formed link and resumes scanning
// one byte further so the bytes re-emerge as literal text.
func parseUnexpectedLinkEnd(s *state, targetEndPosition int) {
	s.warn(WarningInvalidLinkSyntax, s.scanPosition, targetEndPosition)
	s.scanPosition++
}

// absorbLinkTrail walks code points from position while they are members
// of the configured link trail set and returns the position past the
// trail.
func absorbLinkTrail(s *state, configuration *Configuration, position int) int {
	for position < len(s.wikiText) {
		r, size := utf8.DecodeRuneInString(s.wikiText[position:])
		if !configuration.linkTrail.Contains(r) {
			break
		}
		position += size
	}

	return position
}

// trimTargetRight trims trailing ASCII whitespace from a link target.
func trimTargetRight(target string) string {
	return strings.TrimRight(target, " \t\n\r")
}
