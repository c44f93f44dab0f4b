// Package wikitext parses wiki markup into a tree of positioned nodes
// together with a list of warnings for questionable constructs.
//
// The parser is a single pass over the input bytes. It maintains a stack of
// open grammatical contexts (templates, links, lists, tables, tags) and
// resolves ambiguous markup by dispatching on the current byte, a few bytes
// of look-ahead and the top of the stack. Ill-formed constructs never abort
// the parse: the enclosing context is rewound, its bytes are restored as
// literal text and a warning is recorded.
//
// Every node carries half-open byte offsets [Start, End) into the original
// input. Text values are substrings of the input, so the output shares the
// input's lifetime and no copying occurs.
//
// A Configuration holds the lexical tables (URL protocols, namespaces,
// redirect words, magic words, character entities, extension tag names and
// the link trail character set). Configurations are read-only after
// construction and may be shared by concurrent parses; a single parse is
// strictly sequential.
package wikitext
