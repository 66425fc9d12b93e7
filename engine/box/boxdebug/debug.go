/*
Package boxdebug draws box trees with GraphViz.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package boxdebug

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/template"

	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/npillmayer/schuko/tracing"
)

// MaxNodes limits the number of boxes drawn for a single tree.
const MaxNodes = 2000

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// ToGraphViz creates a graphical representation of a box tree.
// It produces a DOT file format suitable as input for Graphviz, given a Writer.
func ToGraphViz(root *box.Box, w io.Writer) error {
	if root == nil {
		return core.Error(core.EINVALID, "cannot draw empty box tree")
	}
	header, err := template.New("boxTree").Parse(graphHeadTmpl)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "graph header template")
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "writing graph header")
	}
	dict := make(map[*box.Box]string, 256)
	if err = boxes(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func boxes(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt > MaxNodes {
		tracer().Infof("box tree exceeds %d boxes, graph truncated", MaxNodes)
		return nil
	}
	if err := node(b, w, dict, gparams); err != nil {
		return err
	}
	tracer().Debugf("box = %s", b.Label())
	for _, child := range b.Children() {
		if err := boxes(child, w, dict, gparams); err != nil {
			return err
		}
		if _, ok := dict[child]; !ok {
			continue // truncated
		}
		if err := gparams.EdgeTmpl.Execute(w, cedge{dict[b], dict[child]}); err != nil {
			return core.WrapError(err, core.EINTERNAL, "writing graph edge")
		}
	}
	return nil
}

func node(b *box.Box, w io.Writer, dict map[*box.Box]string, gparams *graphParamsType) error {
	name := dict[b]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[b] = name
	}
	n := &cbox{B: b, Name: name, Fill: "lightblue3"}
	switch {
	case b.Kind() == box.FragmentBox:
		n.Fill = "grey90"
	case b.HasClass("fontsize-ensurer") || b.HasClass("baseline-fix"):
		n.Fill = "grey80"
	}
	if b.Style().Shifted {
		n.Border = "peripheries=2"
	}
	if err := gparams.BoxTmpl.Execute(w, n); err != nil {
		return core.WrapError(err, core.EINTERNAL, "writing graph node")
	}
	return nil
}

// Helper structs
type cbox struct {
	B      *box.Box
	Name   string
	Fill   string
	Border string
}

type cedge struct {
	N1, N2 string
}

func shortText(b *box.Box) string {
	txt := []rune(b.Text())
	s := "S "
	if len(txt) > 10 {
		s += string(txt[:10]) + "…"
	} else {
		s += string(txt)
	}
	s = strings.ReplaceAll(s, "\u200b", "zwsp")
	return strconv.Quote(s + "\n" + dims(b))
}

func label(b *box.Box) string {
	s := b.Kind().String()
	if cls := b.Classes(); len(cls) > 0 {
		s += " ." + strings.Join(cls, ".")
	}
	return strconv.Quote(s + "\n" + dims(b))
}

func dims(b *box.Box) string {
	s := fmt.Sprintf("h=%s d=%s", b.Height(), b.Depth())
	if b.Style().Shifted {
		s += " top=" + b.Style().Top.String()
	}
	if fs := b.Style().FontSize; fs != 0 {
		s += " fs=" + fs.String()
	}
	return s
}

func tracer() tracing.Trace {
	return tracing.Select("tyse.box")
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "TB"];
  graph [fontname = "{{ .Fontname }}" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`

const boxTmpl = `{{ if eq .B.Kind.String "symbol" }}
{{ .Name }}	[ label={{ shortstring .B }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .B }} shape=box style=filled fillcolor={{ .Fill }} {{ .Border }}] ;
{{ end }}`

const edgeTmpl = `{{ .N1 }} -> {{ .N2 }} [weight=1] ;
`
