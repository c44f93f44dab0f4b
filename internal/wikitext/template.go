package wikitext

// parseTemplateStart handles {{. A third brace opens a parameter frame,
// otherwise a template frame. Leading whitespace inside the braces is
// skipped.
func parseTemplateStart(s *state) {
	if s.byteAt(s.scanPosition+2) == '{' {
		position := s.skipWhitespaceForwards(s.scanPosition + 3)
		s.pushOpenNode(&openNode{kind: openParameter}, position)

		return
	}
	position := s.skipWhitespaceForwards(s.scanPosition + 2)
	s.pushOpenNode(&openNode{kind: openTemplate}, position)
}

// parseParameterNameEnd handles =. It only acts inside a template frame
// whose current parameter has no name yet; everywhere else the byte is
// literal.
func parseParameterNameEnd(s *state) {
	top := s.top()
	if top != nil && top.kind == openTemplate && top.templateNameSet && len(top.parameters) > 0 {
		parameter := &top.parameters[len(top.parameters)-1]
		if parameter.name == nil {
			s.flush(s.skipWhitespaceBackwards(s.scanPosition))
			s.flushedPosition = s.skipWhitespaceForwards(s.scanPosition + 1)
			s.scanPosition = s.flushedPosition
			parameter.name = takeNodes(s)

			return
		}
	}
	s.scanPosition++
}

// parseParameterSeparator handles | inside a {{{ }}} frame with no
// default yet. The first separator ends the name; a second one starts a
// useless extra default.
func parseParameterSeparator(s *state) {
	top := s.top()
	if top == nil || top.kind != openParameter {
		panic("wikitext: parameter separator without parameter frame")
	}
	if !top.parameterNameSet {
		position := s.skipWhitespaceBackwards(s.scanPosition)
		s.flush(position)
		top.parameterName = takeNodes(s)
		top.parameterNameSet = true
	} else {
		s.flush(s.scanPosition)
		top.parameterDefault = takeNodes(s)
		top.hasDefault = true
		s.warn(WarningUselessTextInParameter, s.scanPosition, s.scanPosition+1)
	}
	s.scanPosition++
	s.flushedPosition = s.scanPosition
}

// parseTemplateSeparator handles | inside a {{ }} frame: the segment so
// far becomes the template name or the previous parameter's value, and a
// fresh unnamed parameter starts after the separator.
func parseTemplateSeparator(s *state) {
	top := s.top()
	if top == nil || top.kind != openTemplate {
		panic("wikitext: template separator without template frame")
	}
	position := s.skipWhitespaceBackwards(s.scanPosition)
	s.flush(position)
	s.flushedPosition = s.skipWhitespaceForwards(s.scanPosition + 1)
	s.scanPosition = s.flushedPosition
	if !top.templateNameSet {
		top.templateName = takeNodes(s)
		top.templateNameSet = true
	} else {
		parameter := &top.parameters[len(top.parameters)-1]
		parameter.end = position
		parameter.value = takeNodes(s)
	}
	top.parameters = append(top.parameters, Parameter{
		span: span{start: s.scanPosition},
	})
}

// parseTemplateEnd handles }}. It closes the template or parameter frame
// on top of the stack; with no such frame the braces are reported and
// skipped.
//
//nolint:revive // function-length: one arm per frame disposition
func parseTemplateEnd(s *state) {
	frame := s.pop()
	switch {
	case frame == nil:
		s.warn(WarningUnexpectedEndTag, s.scanPosition, s.scanPosition+2)
		s.scanPosition += 2

	case frame.kind == openParameter:
		if s.byteAt(s.scanPosition+2) != '}' {
			// {{{ closed by only }}.
			s.warn(WarningUnexpectedEndTagRewinding, s.scanPosition, s.scanPosition+2)
			s.rewind(frame.nodes, frame.start)

			return
		}
		if frame.parameterNameSet {
			startPosition := s.scanPosition
			s.flush(startPosition)
			nodes := s.nodes
			s.nodes = frame.nodes
			def := frame.parameterDefault
			if !frame.hasDefault {
				def = nodes
			}
			s.scanPosition += 3
			s.flushedPosition = s.scanPosition
			s.nodes = append(s.nodes, &NodeParameter{
				span:       span{start: frame.start, end: s.scanPosition},
				name:       frame.parameterName,
				def:        def,
				hasDefault: true,
			})
		} else {
			startPosition := s.skipWhitespaceBackwards(s.scanPosition)
			s.flush(startPosition)
			nodes := s.nodes
			s.nodes = frame.nodes
			s.scanPosition += 3
			s.flushedPosition = s.scanPosition
			s.nodes = append(s.nodes, &NodeParameter{
				span: span{start: frame.start, end: s.scanPosition},
				name: nodes,
			})
		}

	case frame.kind == openTemplate:
		position := s.skipWhitespaceBackwards(s.scanPosition)
		s.flush(position)
		s.scanPosition += 2
		s.flushedPosition = s.scanPosition
		name := frame.templateName
		parameters := frame.parameters
		if !frame.templateNameSet {
			name = s.nodes
		} else {
			parameter := &parameters[len(parameters)-1]
			parameter.end = position
			parameter.value = s.nodes
		}
		s.nodes = frame.nodes
		s.nodes = append(s.nodes, &NodeTemplate{
			span:       span{start: frame.start, end: s.scanPosition},
			name:       name,
			parameters: parameters,
		})

	default:
		s.warn(WarningUnexpectedEndTagRewinding, s.scanPosition, s.scanPosition+2)
		s.rewind(frame.nodes, frame.start)
	}
}

// takeNodes detaches the current node list, returning a non-nil slice so
// callers can distinguish an empty captured segment from an absent one.
func takeNodes(s *state) []Node {
	nodes := s.nodes
	s.nodes = nil
	if nodes == nil {
		nodes = []Node{}
	}

	return nodes
}
