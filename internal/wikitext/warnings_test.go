package wikitext

import (
	"testing"
)

func TestWarningRepeatedEmptyLineInBody(t *testing.T) {
	output := parseDefault(t, "a\n\n\nb")
	requireWarnings(t, output, WarningRepeatedEmptyLine)
	requireNodeCount(t, output, 3)
	if output.Nodes[1].NodeType() != NodeTypeParagraphBreak {
		t.Fatalf("expected ParagraphBreak, got %s", output.Nodes[1].NodeType())
	}
}

func TestWarningDefinitionTermContinuation(t *testing.T) {
	output := parseDefault(t, ";a\n;*b\n")
	requireWarnings(t, output, WarningDefinitionTermContinuation)
	warning := output.Warnings[0]
	if warning.End-warning.Start != 1 {
		t.Fatalf("expected one byte wide warning, got %v", warning)
	}
}

func TestWarningUselessTextInParameter(t *testing.T) {
	output := parseDefault(t, "{{{a|b|c}}}")
	requireWarnings(t, output, WarningUselessTextInParameter)
	requireNodeCount(t, output, 1)
	parameter := output.Nodes[0].(*NodeParameter)
	def, hasDefault := parameter.Default()
	if !hasDefault || len(def) != 1 || textValue(t, def[0]) != "b" {
		t.Fatalf("expected default [Text b], got %v", def)
	}
}

func TestWarningUnexpectedEndTagRewinding(t *testing.T) {
	output := parseDefault(t, "{{{a}}")
	requireWarnings(t, output, WarningUnexpectedEndTagRewinding)
	requireNodeCount(t, output, 2)
	if got := textValue(t, output.Nodes[0]); got != "{" {
		t.Fatalf("expected leading literal brace, got %q", got)
	}
	template, ok := output.Nodes[1].(*NodeTemplate)
	if !ok {
		t.Fatalf("expected inner Template after rewind, got %s", output.Nodes[1].NodeType())
	}
	if len(template.Name()) != 1 || textValue(t, template.Name()[0]) != "a" {
		t.Fatalf("unexpected template name after rewind")
	}
}

func TestWarningStrayTextInTable(t *testing.T) {
	output := parseDefault(t, "{|\nstray\n|}")
	requireWarnings(t, output, WarningStrayTextInTable)
	requireNodeCount(t, output, 2)
	if got := textValue(t, output.Nodes[0]); got != "stray" {
		t.Fatalf("expected stray text restored before table, got %q", got)
	}
	if output.Nodes[1].NodeType() != NodeTypeTable {
		t.Fatalf("expected Table, got %s", output.Nodes[1].NodeType())
	}
}

func TestWarningUselessTextInRedirect(t *testing.T) {
	output := parseDefault(t, "#REDIRECT [[X|y]]")
	requireWarnings(t, output, WarningUselessTextInRedirect)
	requireNodeCount(t, output, 1)
	redirect := output.Nodes[0].(*NodeRedirect)
	if redirect.Target() != "X" {
		t.Fatalf("expected target X, got %q", redirect.Target())
	}
}

func TestWarningNestedLinkRewindsOuter(t *testing.T) {
	output := parseDefault(t, "[[a|[[b]]]]")
	if len(output.Warnings) == 0 {
		t.Fatalf("expected at least one warning")
	}
	if output.Warnings[0].Message != WarningInvalidLinkSyntax {
		t.Fatalf("expected InvalidLinkSyntax, got %s", output.Warnings[0].Message)
	}
	found := false
	for _, n := range output.Nodes {
		if link, ok := n.(*NodeLink); ok && link.Target() == "b" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected inner link to survive the rewind")
	}
}

func TestWarningSpansWithinInput(t *testing.T) {
	inputs := []string{
		"{{a",
		"[[a b",
		"[http://e\nx]",
		"<ref>x",
		"{|\n|a",
		"\x01\x02",
		"{{{a}}",
	}
	for _, input := range inputs {
		output := parseDefault(t, input)
		for _, warning := range output.Warnings {
			if warning.Start < 0 || warning.Start > warning.End || warning.End > len(input) {
				t.Fatalf("input %q: warning out of range: %v", input, warning)
			}
		}
	}
}
