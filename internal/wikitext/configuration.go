package wikitext

import (
	"github.com/connerohnesorge/wikitext/internal/trie"
)

// ConfigurationSource lists the lexical tables a Configuration is built
// from. All lookups driven by these tables are prefix matches performed by
// the parser at specific positions; the tables themselves carry no
// parsing logic.
type ConfigurationSource struct {
	// Protocols are the URL scheme prefixes recognized at the start of an
	// external link, e.g. "http://", "mailto:". Matched case-insensitively.
	Protocols []string

	// Namespaces maps link target prefixes including the trailing colon,
	// e.g. "Category:", to the namespace they select. Matched
	// case-insensitively.
	Namespaces map[string]Namespace

	// RedirectMagicWords are the words recognized after a leading # to
	// introduce a redirect, e.g. "REDIRECT". Matched case-insensitively.
	RedirectMagicWords []string

	// MagicWords are the behavior switches recognized after __, including
	// the closing underscores, e.g. "TOC__".
	MagicWords []string

	// CharacterEntities maps entity names including the trailing
	// semicolon, e.g. "amp;", to the code point they decode to.
	CharacterEntities map[string]rune

	// ExtensionTags are the tag names whose elements become Tag nodes
	// with parsed content, e.g. "ref". Matched case-insensitively.
	ExtensionTags []string

	// LinkTrail is the set of code points that extend a link's display
	// text past the closing brackets.
	LinkTrail string
}

// Configuration holds the compiled lexical tables consulted during a
// parse. It is read-only after construction and may be shared across
// concurrent parses.
type Configuration struct {
	protocols          *trie.Trie[struct{}]
	namespaces         *trie.Trie[Namespace]
	redirectMagicWords *trie.Trie[struct{}]
	magicWords         *trie.Trie[struct{}]
	characterEntities  *trie.Trie[rune]
	extensionTags      *trie.Trie[struct{}]
	linkTrail          *trie.RuneSet
}

// NewConfiguration compiles the given tables into a Configuration.
func NewConfiguration(source *ConfigurationSource) *Configuration {
	configuration := &Configuration{
		protocols:          trie.New[struct{}](true),
		namespaces:         trie.New[Namespace](true),
		redirectMagicWords: trie.New[struct{}](true),
		magicWords:         trie.New[struct{}](false),
		characterEntities:  trie.New[rune](false),
		extensionTags:      trie.New[struct{}](true),
		linkTrail:          trie.NewRuneSet(source.LinkTrail),
	}
	for _, protocol := range source.Protocols {
		configuration.protocols.Insert(protocol, struct{}{})
	}
	for prefix, namespace := range source.Namespaces {
		configuration.namespaces.Insert(prefix, namespace)
	}
	for _, word := range source.RedirectMagicWords {
		configuration.redirectMagicWords.Insert(word, struct{}{})
	}
	for _, word := range source.MagicWords {
		configuration.magicWords.Insert(word, struct{}{})
	}
	for name, character := range source.CharacterEntities {
		configuration.characterEntities.Insert(name, character)
	}
	for _, name := range source.ExtensionTags {
		configuration.extensionTags.Insert(name, struct{}{})
	}

	return configuration
}

// Default returns a configuration modeled on English Wikipedia: common URL
// protocols, the Category and File namespaces with their aliases,
// #REDIRECT, the usual behavior switches, the HTML character entities that
// appear in practice, the standard extension tags and an a-z link trail.
func Default() *Configuration {
	return NewConfiguration(&ConfigurationSource{
		Protocols: []string{
			"//",
			"ftp://",
			"ftps://",
			"git://",
			"gopher://",
			"http://",
			"https://",
			"irc://",
			"ircs://",
			"magnet:",
			"mailto:",
			"mms://",
			"news:",
			"nntp://",
			"redis://",
			"sftp://",
			"sip:",
			"sips:",
			"sms:",
			"ssh://",
			"svn://",
			"tel:",
			"telnet://",
			"urn:",
			"worldwind://",
			"xmpp:",
		},
		Namespaces: map[string]Namespace{
			"category:": NamespaceCategory,
			"file:":     NamespaceFile,
			"image:":    NamespaceFile,
		},
		RedirectMagicWords: []string{"REDIRECT"},
		MagicWords: []string{
			"DISAMBIG__",
			"EXPECTUNUSEDCATEGORY__",
			"FORCETOC__",
			"HIDDENCAT__",
			"INDEX__",
			"NEWSECTIONLINK__",
			"NOCC__",
			"NOCONTENTCONVERT__",
			"NOEDITSECTION__",
			"NOGALLERY__",
			"NOINDEX__",
			"NONEWSECTIONLINK__",
			"NOTC__",
			"NOTITLECONVERT__",
			"NOTOC__",
			"STATICREDIRECT__",
			"TOC__",
		},
		CharacterEntities: defaultCharacterEntities(),
		ExtensionTags: []string{
			"categorytree",
			"ce",
			"charinsert",
			"chem",
			"gallery",
			"graph",
			"hiero",
			"imagemap",
			"indicator",
			"inputbox",
			"mapframe",
			"maplink",
			"math",
			"nowiki",
			"poem",
			"pre",
			"ref",
			"references",
			"score",
			"section",
			"source",
			"syntaxhighlight",
			"templatedata",
			"timeline",
		},
		LinkTrail: "abcdefghijklmnopqrstuvwxyz",
	})
}

// defaultCharacterEntities returns the named entities of the default
// configuration. Numeric references are decoded directly by the entity
// parser and need no table.
//
//nolint:revive // function-length: data table
func defaultCharacterEntities() map[string]rune {
	return map[string]rune{
		"AElig;":  'Æ',
		"Aacute;": 'Á',
		"Dagger;": '‡',
		"Delta;":  'Δ',
		"Gamma;":  'Γ',
		"Lambda;": 'Λ',
		"Omega;":  'Ω',
		"Phi;":    'Φ',
		"Pi;":     'Π',
		"Prime;":  '″',
		"Psi;":    'Ψ',
		"Sigma;":  'Σ',
		"Theta;":  'Θ',
		"Xi;":     'Ξ',
		"aacute;": 'á',
		"aelig;":  'æ',
		"agrave;": 'à',
		"alpha;":  'α',
		"amp;":    '&',
		"apos;":   '\'',
		"beta;":   'β',
		"bull;":   '•',
		"ccedil;": 'ç',
		"cent;":   '¢',
		"chi;":    'χ',
		"copy;":   '©',
		"dagger;": '†',
		"darr;":   '↓',
		"deg;":    '°',
		"delta;":  'δ',
		"eacute;": 'é',
		"egrave;": 'è',
		"epsilon;": 'ε',
		"eta;":    'η',
		"euro;":   '€',
		"gamma;":  'γ',
		"ge;":     '≥',
		"gt;":     '>',
		"harr;":   '↔',
		"hellip;": '…',
		"iacute;": 'í',
		"infin;":  '∞',
		"iota;":   'ι',
		"isin;":   '∈',
		"kappa;":  'κ',
		"lambda;": 'λ',
		"laquo;":  '«',
		"larr;":   '←',
		"ldquo;":  '“',
		"le;":     '≤',
		"lsquo;":  '‘',
		"lt;":     '<',
		"mdash;":  '—',
		"micro;":  'µ',
		"middot;": '·',
		"minus;":  '−',
		"mu;":     'μ',
		"nbsp;":   '\u00a0',
		"ndash;":  '–',
		"ne;":     '≠',
		"nu;":     'ν',
		"oacute;": 'ó',
		"omega;":  'ω',
		"ouml;":   'ö',
		"para;":   '¶',
		"phi;":    'φ',
		"pi;":     'π',
		"plusmn;": '±',
		"pound;":  '£',
		"prime;":  '′',
		"prod;":   '∏',
		"psi;":    'ψ',
		"quot;":   '"',
		"radic;":  '√',
		"raquo;":  '»',
		"rarr;":   '→',
		"rdquo;":  '”',
		"reg;":    '®',
		"rho;":    'ρ',
		"rsquo;":  '’',
		"sect;":   '§',
		"sigma;":  'σ',
		"sum;":    '∑',
		"tau;":    'τ',
		"theta;":  'θ',
		"times;":  '×',
		"trade;":  '™',
		"uacute;": 'ú',
		"uarr;":   '↑',
		"uuml;":   'ü',
		"xi;":     'ξ',
		"yen;":    '¥',
		"zeta;":   'ζ',
	}
}
