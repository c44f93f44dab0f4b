// Package dump renders a parsed wikitext document for consumption outside
// the process: machine-readable JSON and a styled terminal tree.
package dump

import (
	"encoding/json"

	"github.com/connerohnesorge/wikitext/internal/wikitext"
)

// Document is the JSON shape of one parse result.
type Document struct {
	Nodes    []JSONNode    `json:"nodes"`
	Warnings []JSONWarning `json:"warnings"`
}

// JSONNode is the JSON shape of one syntax tree node. Only the fields of
// the node's kind are populated.
type JSONNode struct {
	Type       string          `json:"type"`
	Start      int             `json:"start"`
	End        int             `json:"end"`
	Value      string          `json:"value,omitempty"`
	Character  string          `json:"character,omitempty"`
	Level      int             `json:"level,omitempty"`
	Target     string          `json:"target,omitempty"`
	Name       string          `json:"name,omitempty"`
	NameNodes  []JSONNode      `json:"nameNodes,omitempty"`
	Default    []JSONNode      `json:"default,omitempty"`
	Parameters []JSONParameter `json:"parameters,omitempty"`
	Items      []JSONItem      `json:"items,omitempty"`
	Attributes []JSONNode      `json:"attributes,omitempty"`
	Captions   []JSONCaption   `json:"captions,omitempty"`
	Rows       []JSONRow       `json:"rows,omitempty"`
	Children   []JSONNode      `json:"children,omitempty"`
}

// JSONParameter is the JSON shape of a template parameter.
type JSONParameter struct {
	Start int        `json:"start"`
	End   int        `json:"end"`
	Name  []JSONNode `json:"name,omitempty"`
	Value []JSONNode `json:"value,omitempty"`
}

// JSONItem is the JSON shape of a list item.
type JSONItem struct {
	Start int        `json:"start"`
	End   int        `json:"end"`
	Type  string     `json:"type,omitempty"`
	Nodes []JSONNode `json:"nodes,omitempty"`
}

// JSONCaption is the JSON shape of a table caption.
type JSONCaption struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Attributes []JSONNode `json:"attributes,omitempty"`
	Content    []JSONNode `json:"content,omitempty"`
}

// JSONRow is the JSON shape of a table row.
type JSONRow struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Attributes []JSONNode `json:"attributes,omitempty"`
	Cells      []JSONCell `json:"cells,omitempty"`
}

// JSONCell is the JSON shape of a table cell.
type JSONCell struct {
	Start      int        `json:"start"`
	End        int        `json:"end"`
	Type       string     `json:"type"`
	Attributes []JSONNode `json:"attributes,omitempty"`
	Content    []JSONNode `json:"content,omitempty"`
}

// JSONWarning is the JSON shape of a parse warning.
type JSONWarning struct {
	Start   int    `json:"start"`
	End     int    `json:"end"`
	Message string `json:"message"`
}

// MarshalJSON renders a parse output as indented JSON.
func MarshalJSON(output wikitext.Output) ([]byte, error) {
	document := Document{
		Nodes:    convertNodes(output.Nodes),
		Warnings: make([]JSONWarning, 0, len(output.Warnings)),
	}
	for _, warning := range output.Warnings {
		document.Warnings = append(document.Warnings, JSONWarning{
			Start:   warning.Start,
			End:     warning.End,
			Message: warning.Message.String(),
		})
	}

	return json.MarshalIndent(document, "", "  ")
}

func convertNodes(nodes []wikitext.Node) []JSONNode {
	converted := make([]JSONNode, 0, len(nodes))
	for _, n := range nodes {
		converted = append(converted, convertNode(n))
	}

	return converted
}

// convertNode maps one node to its JSON shape.
//
//nolint:revive // function-length,cognitive-complexity: exhaustive switch
// over all node types
func convertNode(n wikitext.Node) JSONNode {
	start, end := n.Span()
	converted := JSONNode{
		Type:  n.NodeType().String(),
		Start: start,
		End:   end,
	}
	switch node := n.(type) {
	case *wikitext.NodeText:
		converted.Value = node.Value()
	case *wikitext.NodeCharacterEntity:
		converted.Character = string(node.Character())
	case *wikitext.NodeHeading:
		converted.Level = node.Level()
		converted.Children = convertNodes(node.Nodes())
	case *wikitext.NodePreformatted:
		converted.Children = convertNodes(node.Nodes())
	case *wikitext.NodeOrderedList:
		converted.Items = convertListItems(node.Items())
	case *wikitext.NodeUnorderedList:
		converted.Items = convertListItems(node.Items())
	case *wikitext.NodeDefinitionList:
		converted.Items = convertDefinitionItems(node.Items())
	case *wikitext.NodeExternalLink:
		converted.Children = convertNodes(node.Nodes())
	case *wikitext.NodeLink:
		converted.Target = node.Target()
		converted.Children = convertNodes(node.Text())
	case *wikitext.NodeImage:
		converted.Target = node.Target()
		converted.Children = convertNodes(node.Text())
	case *wikitext.NodeCategory:
		converted.Target = node.Target()
		converted.Children = convertNodes(node.Ordinal())
	case *wikitext.NodeRedirect:
		converted.Target = node.Target()
	case *wikitext.NodeTemplate:
		converted.NameNodes = convertNodes(node.Name())
		converted.Parameters = convertParameters(node.Parameters())
	case *wikitext.NodeParameter:
		converted.NameNodes = convertNodes(node.Name())
		if def, ok := node.Default(); ok {
			converted.Default = convertNodes(def)
		}
	case *wikitext.NodeStartTag:
		converted.Name = node.Name()
	case *wikitext.NodeEndTag:
		converted.Name = node.Name()
	case *wikitext.NodeTag:
		converted.Name = node.Name()
		converted.Children = convertNodes(node.Nodes())
	case *wikitext.NodeTable:
		converted.Attributes = convertNodes(node.Attributes())
		converted.Captions = convertCaptions(node.Captions())
		converted.Rows = convertRows(node.Rows())
	}

	return converted
}

func convertListItems(items []wikitext.ListItem) []JSONItem {
	converted := make([]JSONItem, 0, len(items))
	for i := range items {
		start, end := items[i].Span()
		converted = append(converted, JSONItem{
			Start: start,
			End:   end,
			Nodes: convertNodes(items[i].Nodes()),
		})
	}

	return converted
}

func convertDefinitionItems(items []wikitext.DefinitionListItem) []JSONItem {
	converted := make([]JSONItem, 0, len(items))
	for i := range items {
		start, end := items[i].Span()
		converted = append(converted, JSONItem{
			Start: start,
			End:   end,
			Type:  items[i].Type().String(),
			Nodes: convertNodes(items[i].Nodes()),
		})
	}

	return converted
}

func convertParameters(parameters []wikitext.Parameter) []JSONParameter {
	converted := make([]JSONParameter, 0, len(parameters))
	for i := range parameters {
		start, end := parameters[i].Span()
		converted = append(converted, JSONParameter{
			Start: start,
			End:   end,
			Name:  convertNodes(parameters[i].Name()),
			Value: convertNodes(parameters[i].Value()),
		})
	}

	return converted
}

func convertCaptions(captions []wikitext.TableCaption) []JSONCaption {
	converted := make([]JSONCaption, 0, len(captions))
	for i := range captions {
		start, end := captions[i].Span()
		converted = append(converted, JSONCaption{
			Start:      start,
			End:        end,
			Attributes: convertNodes(captions[i].Attributes()),
			Content:    convertNodes(captions[i].Content()),
		})
	}

	return converted
}

func convertRows(rows []wikitext.TableRow) []JSONRow {
	converted := make([]JSONRow, 0, len(rows))
	for i := range rows {
		start, end := rows[i].Span()
		row := JSONRow{
			Start:      start,
			End:        end,
			Attributes: convertNodes(rows[i].Attributes()),
		}
		for j := range rows[i].Cells() {
			cells := rows[i].Cells()
			cellStart, cellEnd := cells[j].Span()
			row.Cells = append(row.Cells, JSONCell{
				Start:      cellStart,
				End:        cellEnd,
				Type:       cells[j].Type().String(),
				Attributes: convertNodes(cells[j].Attributes()),
				Content:    convertNodes(cells[j].Content()),
			})
		}
		converted = append(converted, row)
	}

	return converted
}
