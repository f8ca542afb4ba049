// SPDX-FileCopyrightText: 2024 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package pages

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"golang.org/x/net/html"
)

// parser extension for GitHub Flavored Markdown & Frontmatter support
var gmParser = goldmark.New(goldmark.WithExtensions(extension.GFM, meta.Meta))

// parse reads the frontmatter and the first level 1 heading of a markdown page
func parse(source []byte) (map[string]interface{}, string, error) {
	reader := text.NewReader(source)
	context := parser.NewContext()
	doc := gmParser.Parser().Parse(reader, parser.WithContext(context))
	fm, err := meta.TryGet(context)
	if err != nil {
		return nil, "", fmt.Errorf("invalid frontmatter: %w", err)
	}
	var heading string
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch h := n.(type) {
		case *ast.Heading:
			if h.Level == 1 {
				heading = string(h.Text(source))
				return ast.WalkStop, nil
			}
		case *ast.HTMLBlock:
			if t, ok := htmlHeading(rawHTML(h, source)); ok {
				heading = t
				return ast.WalkStop, nil
			}
		}
		return ast.WalkContinue, nil
	})
	return fm, heading, nil
}

func rawHTML(n *ast.HTMLBlock, source []byte) []byte {
	var buf bytes.Buffer
	for i := 0; i < n.Lines().Len(); i++ {
		line := n.Lines().At(i)
		buf.Write(line.Value(source))
	}
	if n.HasClosure() {
		buf.Write(n.ClosureLine.Value(source))
	}
	return buf.Bytes()
}

// htmlHeading returns the text of the first <h1> element, e.g. of a centered
// README style banner
func htmlHeading(source []byte) (string, bool) {
	var (
		inside bool
		parts  []string
	)
	z := html.NewTokenizer(bytes.NewReader(source))
	for {
		tt := z.Next()
		switch tt {
		case html.ErrorToken:
			// end of block, possibly inside an unterminated element
			return strings.Join(parts, " "), inside && len(parts) > 0
		case html.StartTagToken:
			if name, _ := z.TagName(); string(name) == "h1" {
				inside = true
			}
		case html.EndTagToken:
			if name, _ := z.TagName(); inside && string(name) == "h1" {
				t := strings.Join(parts, " ")
				return t, t != ""
			}
		case html.TextToken:
			if inside {
				parts = append(parts, strings.Fields(string(z.Text()))...)
			}
		}
	}
}
