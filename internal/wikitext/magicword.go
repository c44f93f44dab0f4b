package wikitext

// parseMagicWord handles __. The text after the underscores must match a
// configured behavior switch including its closing underscores, otherwise
// the first underscore is literal.
func parseMagicWord(s *state, configuration *Configuration) {
	start := s.scanPosition
	matchLength, _, ok := configuration.magicWords.Find(s.wikiText[start+2:])
	if !ok {
		s.scanPosition++

		return
	}
	s.flush(start)
	end := start + 2 + matchLength
	s.nodes = append(s.nodes, &NodeMagicWord{
		span: span{start: start, end: end},
	})
	s.scanPosition = end
	s.flushedPosition = end
}
