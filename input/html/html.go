/*
Package html renders math contained in the text of HTML documents.

Text nodes of an HTML tree are scanned for $-delimited math, which is
replaced by the output of a math renderer (see package preprocess).
Elements which hold code or raw text (script, style, pre, code, …) are
skipped.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package html

import (
	"io"
	"strings"

	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/input/preprocess"
	"github.com/npillmayer/schuko/tracing"
	nethtml "golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'tyse.input'.
func tracer() tracing.Trace {
	return tracing.Select("tyse.input")
}

var ignoredElements = map[atom.Atom]bool{
	atom.Script:   true,
	atom.Noscript: true,
	atom.Style:    true,
	atom.Textarea: true,
	atom.Pre:      true,
	atom.Code:     true,
	atom.Title:    true,
}

// RenderMathInElement replaces math in all text nodes below n, see
// preprocess.RenderMixed. n is modified in place.
func RenderMathInElement(n *nethtml.Node, r preprocess.MathRenderer, cfg preprocess.Config) error {
	if n == nil {
		return core.Error(core.EINVALID, "cannot render math in nil node")
	}
	context := n
	if n.Type != nethtml.ElementNode {
		context = bodyElement()
	}
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		switch c.Type {
		case nethtml.TextNode:
			if err := replaceText(n, c, context, r, cfg); err != nil {
				return err
			}
		case nethtml.ElementNode:
			if ignoredElements[c.DataAtom] {
				tracer().Debugf("skipping <%s>", c.Data)
				break
			}
			if err := RenderMathInElement(c, r, cfg); err != nil {
				return err
			}
		}
		c = next
	}
	return nil
}

func replaceText(parent, text, context *nethtml.Node, r preprocess.MathRenderer,
	cfg preprocess.Config) error {
	//
	out, err := preprocess.RenderMixed(text.Data, r, cfg)
	if err != nil {
		return err
	}
	frag, err := nethtml.ParseFragment(strings.NewReader(out), context)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "rendered math is not valid HTML")
	}
	for _, f := range frag {
		parent.InsertBefore(f, text)
	}
	parent.RemoveChild(text)
	return nil
}

// RenderMathInFragment reads an HTML fragment, replaces math in its text
// and writes the resulting HTML to w.
func RenderMathInFragment(in io.Reader, w io.Writer, r preprocess.MathRenderer,
	cfg preprocess.Config) error {
	//
	body := bodyElement()
	nodes, err := nethtml.ParseFragment(in, body)
	if err != nil {
		return core.WrapError(err, core.EINVALID, "cannot parse HTML fragment")
	}
	for _, n := range nodes {
		body.AppendChild(n)
	}
	if err = RenderMathInElement(body, r, cfg); err != nil {
		return err
	}
	for c := body.FirstChild; c != nil; c = c.NextSibling {
		if err = nethtml.Render(w, c); err != nil {
			return err
		}
	}
	return nil
}

func bodyElement() *nethtml.Node {
	return &nethtml.Node{
		Type:     nethtml.ElementNode,
		Data:     "body",
		DataAtom: atom.Body,
	}
}
