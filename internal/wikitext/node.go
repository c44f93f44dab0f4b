//nolint:revive // file-length-limit: node types require comprehensive definitions
package wikitext

// NodeType represents the type of a syntax tree node.
// Each type corresponds to a different wiki markup construct.
type NodeType uint8

const (
	// NodeTypeText is a literal run of input text.
	NodeTypeText NodeType = iota
	// NodeTypeBold is a bold toggle (''').
	NodeTypeBold
	// NodeTypeItalic is an italic toggle ('').
	NodeTypeItalic
	// NodeTypeBoldItalic is a combined bold italic toggle (''''').
	NodeTypeBoldItalic
	// NodeTypeParagraphBreak separates two paragraphs.
	NodeTypeParagraphBreak
	// NodeTypeHorizontalDivider is a ---- divider line.
	NodeTypeHorizontalDivider
	// NodeTypeHeading is a = delimited heading, levels 1-6.
	NodeTypeHeading
	// NodeTypePreformatted is a space-indented preformatted block.
	NodeTypePreformatted
	// NodeTypeOrderedList is a # list.
	NodeTypeOrderedList
	// NodeTypeUnorderedList is a * list.
	NodeTypeUnorderedList
	// NodeTypeDefinitionList is a ;/: list of terms and details.
	NodeTypeDefinitionList
	// NodeTypeExternalLink is a [url text] link.
	NodeTypeExternalLink
	// NodeTypeLink is an internal [[target]] or [[target|text]] link.
	NodeTypeLink
	// NodeTypeImage is a [[File:...]] link.
	NodeTypeImage
	// NodeTypeCategory is a [[Category:...]] link.
	NodeTypeCategory
	// NodeTypeRedirect is a #REDIRECT [[target]] preamble.
	NodeTypeRedirect
	// NodeTypeTemplate is a {{name|...}} transclusion.
	NodeTypeTemplate
	// NodeTypeParameter is a {{{name|default}}} parameter.
	NodeTypeParameter
	// NodeTypeCharacterEntity is a decoded &entity; reference.
	NodeTypeCharacterEntity
	// NodeTypeComment is a <!-- --> comment.
	NodeTypeComment
	// NodeTypeStartTag is an unpaired <tag> start tag.
	NodeTypeStartTag
	// NodeTypeEndTag is an unpaired </tag> end tag.
	NodeTypeEndTag
	// NodeTypeTag is a paired extension tag with parsed content.
	NodeTypeTag
	// NodeTypeMagicWord is a __WORD__ behavior switch.
	NodeTypeMagicWord
	// NodeTypeTable is a {| |} table.
	NodeTypeTable
)

// String returns a human-readable name for the node type.
//
//nolint:revive // function-length: exhaustive switch over all node types
func (t NodeType) String() string {
	switch t {
	case NodeTypeText:
		return "Text"
	case NodeTypeBold:
		return "Bold"
	case NodeTypeItalic:
		return "Italic"
	case NodeTypeBoldItalic:
		return "BoldItalic"
	case NodeTypeParagraphBreak:
		return "ParagraphBreak"
	case NodeTypeHorizontalDivider:
		return "HorizontalDivider"
	case NodeTypeHeading:
		return "Heading"
	case NodeTypePreformatted:
		return "Preformatted"
	case NodeTypeOrderedList:
		return "OrderedList"
	case NodeTypeUnorderedList:
		return "UnorderedList"
	case NodeTypeDefinitionList:
		return "DefinitionList"
	case NodeTypeExternalLink:
		return "ExternalLink"
	case NodeTypeLink:
		return "Link"
	case NodeTypeImage:
		return "Image"
	case NodeTypeCategory:
		return "Category"
	case NodeTypeRedirect:
		return "Redirect"
	case NodeTypeTemplate:
		return "Template"
	case NodeTypeParameter:
		return "Parameter"
	case NodeTypeCharacterEntity:
		return "CharacterEntity"
	case NodeTypeComment:
		return "Comment"
	case NodeTypeStartTag:
		return "StartTag"
	case NodeTypeEndTag:
		return "EndTag"
	case NodeTypeTag:
		return "Tag"
	case NodeTypeMagicWord:
		return "MagicWord"
	case NodeTypeTable:
		return "Table"
	default:
		return "Unknown"
	}
}

// Namespace classifies an internal link target prefix.
type Namespace uint8

const (
	// NamespaceNone marks a plain article link.
	NamespaceNone Namespace = iota
	// NamespaceCategory marks a [[Category:...]] link.
	NamespaceCategory
	// NamespaceFile marks a [[File:...]] link.
	NamespaceFile
)

// String returns a human-readable name for the namespace.
func (n Namespace) String() string {
	switch n {
	case NamespaceCategory:
		return "Category"
	case NamespaceFile:
		return "File"
	case NamespaceNone:
		return "None"
	default:
		return "Unknown"
	}
}

// Node is the interface implemented by all syntax tree nodes.
// Pattern-match with a type switch on the concrete *NodeX types or
// dispatch on NodeType().
type Node interface {
	// NodeType returns the type classification of this node.
	NodeType() NodeType

	// Span returns the half-open byte offset range [start, end) of this
	// node in the original input.
	Span() (start, end int)
}

// Positioned is the minimal accessor shared by nodes and the auxiliary
// positioned values (list items, table rows, cells, captions, parameters).
type Positioned interface {
	Span() (start, end int)
}

// span carries the byte offsets common to every node and positioned value.
// It is embedded in each concrete type.
type span struct {
	start int
	end   int
}

// Span returns the half-open byte offset range [start, end).
func (s *span) Span() (start, end int) {
	return s.start, s.end
}

// NodeText is a literal run of input text. Value is a substring of the
// original input.
type NodeText struct {
	span
	value string
}

// NodeType returns NodeTypeText.
func (*NodeText) NodeType() NodeType { return NodeTypeText }

// Value returns the literal text, a substring of the input.
func (n *NodeText) Value() string { return n.value }

// NodeBold is a bold toggle marker. It carries no content: rendering
// pairs toggles up itself.
type NodeBold struct {
	span
}

// NodeType returns NodeTypeBold.
func (*NodeBold) NodeType() NodeType { return NodeTypeBold }

// NodeItalic is an italic toggle marker.
type NodeItalic struct {
	span
}

// NodeType returns NodeTypeItalic.
func (*NodeItalic) NodeType() NodeType { return NodeTypeItalic }

// NodeBoldItalic is a combined bold italic toggle marker.
type NodeBoldItalic struct {
	span
}

// NodeType returns NodeTypeBoldItalic.
func (*NodeBoldItalic) NodeType() NodeType { return NodeTypeBoldItalic }

// NodeParagraphBreak separates two paragraphs.
type NodeParagraphBreak struct {
	span
}

// NodeType returns NodeTypeParagraphBreak.
func (*NodeParagraphBreak) NodeType() NodeType { return NodeTypeParagraphBreak }

// NodeHorizontalDivider is a ---- divider line.
type NodeHorizontalDivider struct {
	span
}

// NodeType returns NodeTypeHorizontalDivider.
func (*NodeHorizontalDivider) NodeType() NodeType { return NodeTypeHorizontalDivider }

// NodeHeading is a heading with level 1-6 and inline content.
type NodeHeading struct {
	span
	level int
	nodes []Node
}

// NodeType returns NodeTypeHeading.
func (*NodeHeading) NodeType() NodeType { return NodeTypeHeading }

// Level returns the heading level, 1 through 6.
func (n *NodeHeading) Level() int { return n.level }

// Nodes returns the heading's inline content.
func (n *NodeHeading) Nodes() []Node { return n.nodes }

// NodePreformatted is a space-indented preformatted block.
type NodePreformatted struct {
	span
	nodes []Node
}

// NodeType returns NodeTypePreformatted.
func (*NodePreformatted) NodeType() NodeType { return NodeTypePreformatted }

// Nodes returns the block's content.
func (n *NodePreformatted) Nodes() []Node { return n.nodes }

// ListItem is one item of an ordered or unordered list.
type ListItem struct {
	span
	nodes []Node
}

// Nodes returns the item's content.
func (i *ListItem) Nodes() []Node { return i.nodes }

// NodeOrderedList is a # list.
type NodeOrderedList struct {
	span
	items []ListItem
}

// NodeType returns NodeTypeOrderedList.
func (*NodeOrderedList) NodeType() NodeType { return NodeTypeOrderedList }

// Items returns the list items in source order.
func (n *NodeOrderedList) Items() []ListItem { return n.items }

// NodeUnorderedList is a * list.
type NodeUnorderedList struct {
	span
	items []ListItem
}

// NodeType returns NodeTypeUnorderedList.
func (*NodeUnorderedList) NodeType() NodeType { return NodeTypeUnorderedList }

// Items returns the list items in source order.
func (n *NodeUnorderedList) Items() []ListItem { return n.items }

// DefinitionListItemType distinguishes terms (;) from details (:).
type DefinitionListItemType uint8

const (
	// DefinitionListItemTypeDetails is a : item.
	DefinitionListItemTypeDetails DefinitionListItemType = iota
	// DefinitionListItemTypeTerm is a ; item.
	DefinitionListItemTypeTerm
)

// String returns a human-readable name for the item type.
func (t DefinitionListItemType) String() string {
	if t == DefinitionListItemTypeTerm {
		return "Term"
	}

	return "Details"
}

// DefinitionListItem is one term or details item of a definition list.
type DefinitionListItem struct {
	span
	itemType DefinitionListItemType
	nodes    []Node
}

// Type returns whether the item is a term or details.
func (i *DefinitionListItem) Type() DefinitionListItemType { return i.itemType }

// Nodes returns the item's content.
func (i *DefinitionListItem) Nodes() []Node { return i.nodes }

// NodeDefinitionList is a ;/: list.
type NodeDefinitionList struct {
	span
	items []DefinitionListItem
}

// NodeType returns NodeTypeDefinitionList.
func (*NodeDefinitionList) NodeType() NodeType { return NodeTypeDefinitionList }

// Items returns the list items in source order.
func (n *NodeDefinitionList) Items() []DefinitionListItem { return n.items }

// NodeExternalLink is a [url text] link. The first content node carries
// the URL, subsequent nodes the display text.
type NodeExternalLink struct {
	span
	nodes []Node
}

// NodeType returns NodeTypeExternalLink.
func (*NodeExternalLink) NodeType() NodeType { return NodeTypeExternalLink }

// Nodes returns the link's content.
func (n *NodeExternalLink) Nodes() []Node { return n.nodes }

// NodeLink is an internal link to an article.
type NodeLink struct {
	span
	target string
	text   []Node
}

// NodeType returns NodeTypeLink.
func (*NodeLink) NodeType() NodeType { return NodeTypeLink }

// Target returns the link target, right-trimmed.
func (n *NodeLink) Target() string { return n.target }

// Text returns the display text nodes, including any absorbed link trail.
func (n *NodeLink) Text() []Node { return n.text }

// NodeImage is a link into the file namespace.
type NodeImage struct {
	span
	target string
	text   []Node
}

// NodeType returns NodeTypeImage.
func (*NodeImage) NodeType() NodeType { return NodeTypeImage }

// Target returns the file name, right-trimmed, without the namespace
// prefix.
func (n *NodeImage) Target() string { return n.target }

// Text returns the caption nodes.
func (n *NodeImage) Text() []Node { return n.text }

// NodeCategory is a link into the category namespace.
type NodeCategory struct {
	span
	target  string
	ordinal []Node
}

// NodeType returns NodeTypeCategory.
func (*NodeCategory) NodeType() NodeType { return NodeTypeCategory }

// Target returns the category name, right-trimmed, without the namespace
// prefix.
func (n *NodeCategory) Target() string { return n.target }

// Ordinal returns the sort key nodes following the |, if any.
func (n *NodeCategory) Ordinal() []Node { return n.ordinal }

// NodeRedirect is the #REDIRECT preamble of a redirect page.
type NodeRedirect struct {
	span
	target string
}

// NodeType returns NodeTypeRedirect.
func (*NodeRedirect) NodeType() NodeType { return NodeTypeRedirect }

// Target returns the redirect target.
func (n *NodeRedirect) Target() string { return n.target }

// Parameter is one |-separated argument of a template.
type Parameter struct {
	span
	name  []Node // nil when positional
	value []Node
}

// Name returns the parameter name nodes, or nil for a positional
// parameter.
func (p *Parameter) Name() []Node { return p.name }

// Value returns the parameter value nodes.
func (p *Parameter) Value() []Node { return p.value }

// NodeTemplate is a {{name|...}} transclusion.
type NodeTemplate struct {
	span
	name       []Node
	parameters []Parameter
}

// NodeType returns NodeTypeTemplate.
func (*NodeTemplate) NodeType() NodeType { return NodeTypeTemplate }

// Name returns the template name nodes.
func (n *NodeTemplate) Name() []Node { return n.name }

// Parameters returns the template parameters in source order.
func (n *NodeTemplate) Parameters() []Parameter { return n.parameters }

// NodeParameter is a {{{name|default}}} parameter reference.
type NodeParameter struct {
	span
	name       []Node
	def        []Node
	hasDefault bool
}

// NodeType returns NodeTypeParameter.
func (*NodeParameter) NodeType() NodeType { return NodeTypeParameter }

// Name returns the parameter name nodes.
func (n *NodeParameter) Name() []Node { return n.name }

// Default returns the default value nodes and whether a default was
// present.
func (n *NodeParameter) Default() ([]Node, bool) { return n.def, n.hasDefault }

// NodeCharacterEntity is a decoded character reference.
type NodeCharacterEntity struct {
	span
	character rune
}

// NodeType returns NodeTypeCharacterEntity.
func (*NodeCharacterEntity) NodeType() NodeType { return NodeTypeCharacterEntity }

// Character returns the decoded code point.
func (n *NodeCharacterEntity) Character() rune { return n.character }

// NodeComment is a <!-- --> comment.
type NodeComment struct {
	span
}

// NodeType returns NodeTypeComment.
func (*NodeComment) NodeType() NodeType { return NodeTypeComment }

// NodeStartTag is a start tag that does not open an extension tag frame.
type NodeStartTag struct {
	span
	name string
}

// NodeType returns NodeTypeStartTag.
func (*NodeStartTag) NodeType() NodeType { return NodeTypeStartTag }

// Name returns the tag name, lower-cased.
func (n *NodeStartTag) Name() string { return n.name }

// NodeEndTag is an end tag with no matching open extension tag.
type NodeEndTag struct {
	span
	name string
}

// NodeType returns NodeTypeEndTag.
func (*NodeEndTag) NodeType() NodeType { return NodeTypeEndTag }

// Name returns the tag name, lower-cased.
func (n *NodeEndTag) Name() string { return n.name }

// NodeTag is a paired extension tag with its content.
type NodeTag struct {
	span
	name  string
	nodes []Node
}

// NodeType returns NodeTypeTag.
func (*NodeTag) NodeType() NodeType { return NodeTypeTag }

// Name returns the tag name, lower-cased.
func (n *NodeTag) Name() string { return n.name }

// Nodes returns the tag's content.
func (n *NodeTag) Nodes() []Node { return n.nodes }

// NodeMagicWord is a __WORD__ behavior switch.
type NodeMagicWord struct {
	span
}

// NodeType returns NodeTypeMagicWord.
func (*NodeMagicWord) NodeType() NodeType { return NodeTypeMagicWord }

// TableCellType distinguishes ordinary cells from heading cells.
type TableCellType uint8

const (
	// TableCellTypeOrdinary is a | cell.
	TableCellTypeOrdinary TableCellType = iota
	// TableCellTypeHeading is a ! cell.
	TableCellTypeHeading
)

// String returns a human-readable name for the cell type.
func (t TableCellType) String() string {
	if t == TableCellTypeHeading {
		return "Heading"
	}

	return "Ordinary"
}

// TableCell is one cell of a table row.
type TableCell struct {
	span
	cellType   TableCellType
	attributes []Node // nil when the cell has no attribute segment
	content    []Node
}

// Type returns whether the cell is ordinary or a heading.
func (c *TableCell) Type() TableCellType { return c.cellType }

// Attributes returns the cell's attribute nodes, or nil.
func (c *TableCell) Attributes() []Node { return c.attributes }

// Content returns the cell's content.
func (c *TableCell) Content() []Node { return c.content }

// TableRow is one |- row of a table.
type TableRow struct {
	span
	attributes []Node
	cells      []TableCell
}

// Attributes returns the row's attribute nodes.
func (r *TableRow) Attributes() []Node { return r.attributes }

// Cells returns the row's cells in source order.
func (r *TableRow) Cells() []TableCell { return r.cells }

// TableCaption is one |+ caption of a table.
type TableCaption struct {
	span
	attributes []Node // nil when the caption has no attribute segment
	content    []Node
}

// Attributes returns the caption's attribute nodes, or nil.
func (c *TableCaption) Attributes() []Node { return c.attributes }

// Content returns the caption's content.
func (c *TableCaption) Content() []Node { return c.content }

// NodeTable is a {| |} table.
type NodeTable struct {
	span
	attributes []Node
	captions   []TableCaption
	rows       []TableRow
}

// NodeType returns NodeTypeTable.
func (*NodeTable) NodeType() NodeType { return NodeTypeTable }

// Attributes returns the table's attribute nodes.
func (n *NodeTable) Attributes() []Node { return n.attributes }

// Captions returns the table captions in source order.
func (n *NodeTable) Captions() []TableCaption { return n.captions }

// Rows returns the table rows in source order.
func (n *NodeTable) Rows() []TableRow { return n.rows }
