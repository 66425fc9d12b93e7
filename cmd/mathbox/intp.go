package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathbox/core"
	"github.com/npillmayer/mathbox/core/dimen"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/font/fontregistry"
	"github.com/npillmayer/mathbox/core/parameters"
	"github.com/npillmayer/mathbox/engine/box"
	"github.com/npillmayer/mathbox/engine/box/boxdebug"
	"github.com/npillmayer/mathbox/engine/build"
	"github.com/npillmayer/mathbox/engine/fontvariant"
	"github.com/npillmayer/mathbox/engine/symbols"
	"github.com/npillmayer/mathbox/input/preprocess"
	"github.com/pterm/pterm"
)

// Intp is our interpreter object
type Intp struct {
	repl     *readline.Instance
	registry *fontregistry.Registry
	builder  *build.Builder
	style    parameters.StyleContext
	mode     symbols.Mode
	last     *box.Box // result of the last command
	missing  []string // diagnostics of the last command
}

// NewIntp creates an interpreter using the fonts of a registry.
func NewIntp(registry *fontregistry.Registry) *Intp {
	intp := &Intp{
		registry: registry,
		style:    parameters.DefaultStyle(),
		mode:     symbols.Math,
	}
	intp.builder = build.New(
		build.WithMetrics(registry.Metrics()),
		build.WithObserver(build.ObserverFunc(func(value string, face font.Face) {
			intp.missing = append(intp.missing, fmt.Sprintf("%q in %s", value, face))
		})),
	)
	return intp
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			pterm.Error.Println(err.Error())
			continue
		}
		if quit {
			break
		}
		intp.show()
	}
	pterm.Info.Println("Good bye!")
}

// Execute interprets a single command line. It returns true if the user
// asked to quit.
func (intp *Intp) Execute(line string) (bool, error) {
	line = strings.TrimSpace(line)
	args := strings.Fields(line)
	if len(args) == 0 {
		return false, nil
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, args[0]))
	cmd, args := strings.ToLower(args[0]), args[1:]
	tracer().Debugf("command %s %v", cmd, args)
	intp.missing = intp.missing[:0]
	var err error
	switch cmd {
	case "quit", "exit":
		return true, nil
	case "help":
		help()
	case "mode":
		err = intp.setMode(args)
	case "size":
		err = intp.setSize(args)
	case "sym":
		err = intp.symbol(args)
	case "var":
		err = intp.variant(args)
	case "mathsym":
		err = intp.mathsym(args)
	case "vlist":
		err = intp.vlist(args)
	case "space", "spaces":
		err = spacing(args)
	case "faces":
		for _, f := range font.Faces() {
			pterm.Println(f)
		}
	case "mixed":
		err = intp.mixed(rest)
	case "graph":
		err = intp.graph(args)
	default:
		err = core.Error(core.EINVALID, "unknown command %q, try help", cmd)
	}
	return false, err
}

func (intp *Intp) setMode(args []string) error {
	if len(args) != 1 {
		return core.Error(core.EINVALID, "usage: mode math|text")
	}
	m, ok := symbols.ParseMode(args[0])
	if !ok {
		return core.Error(core.EINVALID, "unknown mode %q", args[0])
	}
	intp.mode = m
	pterm.Printfln("mode is %s", m)
	return nil
}

func (intp *Intp) setSize(args []string) error {
	if len(args) != 1 {
		pterm.Printfln("size is %s, multiplier %g", intp.style.Size, intp.style.SizeMultiplier())
		return nil
	}
	n, err := strconv.Atoi(args[0])
	if err != nil || !parameters.Size(n).Valid() {
		return core.Error(core.EINVALID, "size must be a number 1…10")
	}
	intp.style = intp.style.WithSize(parameters.Size(n))
	pterm.Printfln("size is %s, multiplier %g", intp.style.Size, intp.style.SizeMultiplier())
	return nil
}

// sym FACE VALUE
func (intp *Intp) symbol(args []string) error {
	if len(args) != 2 {
		return core.Error(core.EINVALID, "usage: sym FACE VALUE")
	}
	face, err := parseFace(args[0])
	if err != nil {
		return err
	}
	intp.last = intp.builder.MakeSymbol(args[1], face, intp.mode, intp.style.Color)
	return nil
}

// var NAME VALUE [TYPE]
func (intp *Intp) variant(args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return core.Error(core.EINVALID, "usage: var NAME VALUE [mathord|textord]")
	}
	typ := symbols.MathOrd
	if len(args) == 3 {
		typ = symbols.Group(args[2])
	} else if sym, ok := intp.builder.Symbols().Lookup(intp.mode, args[1]); ok {
		typ = sym.Group
	}
	b, err := intp.builder.Variant(fontvariant.Name(args[0]), args[1], intp.mode, intp.style.Color, nil, typ)
	if err != nil {
		return err
	}
	intp.last = b
	if mv, ok := fontvariant.MathMLVariant(fontvariant.Name(args[0])); ok {
		pterm.Printfln("mathvariant=%q applies: %v", mv, fontvariant.Test(fontvariant.Name(args[0]), args[1]))
	}
	return nil
}

// mathsym VALUE
func (intp *Intp) mathsym(args []string) error {
	if len(args) != 1 {
		return core.Error(core.EINVALID, "usage: mathsym VALUE")
	}
	intp.last = intp.builder.Mathsym(args[0], intp.mode, intp.style.Color, nil)
	return nil
}

// vlist POSITION DATA ITEM…
func (intp *Intp) vlist(args []string) error {
	if len(args) < 2 {
		return core.Error(core.EINVALID, "usage: vlist POSITION DATA h:d[:f][@shift] | kern:s …")
	}
	pos, ok := box.ParsePositionType(args[0])
	if !ok {
		pterm.Warning.Printfln("unknown position type %q, baseline offset will be 0", args[0])
	}
	data, err := dimen.ParseEm(args[1])
	if err != nil {
		return core.WrapError(err, core.EINVALID, "position data %q", args[1])
	}
	items, err := ParseItems(args[2:])
	if err != nil {
		return err
	}
	intp.last = box.MakeVList(items, pos, data, intp.style)
	return nil
}

// ParseItems parses vlist items. Elements are given as struts
// "height:depth[:fontsize][@shift]", kerns as "kern:size".
func ParseItems(args []string) ([]box.Item, error) {
	items := make([]box.Item, 0, len(args))
	for _, arg := range args {
		if strings.HasPrefix(arg, "kern:") {
			k, err := dimen.ParseEm(strings.TrimPrefix(arg, "kern:"))
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "kern %q", arg)
			}
			items = append(items, box.Kern(k))
			continue
		}
		dims, shift, shifted := strings.Cut(arg, "@")
		parts := strings.Split(dims, ":")
		if len(parts) < 2 || len(parts) > 3 {
			return nil, core.Error(core.EINVALID, "item %q is not of form h:d[:f][@shift]", arg)
		}
		var ems [2]dimen.Em
		for i := range ems {
			e, err := dimen.ParseEm(parts[i])
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "item %q", arg)
			}
			ems[i] = e
		}
		var fs float64
		if len(parts) == 3 {
			f, err := strconv.ParseFloat(parts[2], 64)
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID, "font size of item %q", arg)
			}
			fs = f
		}
		strut := box.MakeStrut(ems[0], ems[1], fs)
		if !shifted {
			items = append(items, box.Elem(strut))
			continue
		}
		s, err := dimen.ParseEm(shift)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID, "shift of item %q", arg)
		}
		items = append(items, box.ShiftedElem(strut, s))
	}
	return items, nil
}

// space [CMD]
func spacing(args []string) error {
	cmds := parameters.SpacingCommands()
	if len(args) == 1 {
		cmds = args
	}
	data := pterm.TableData{{"command", "size", "class"}}
	for _, cmd := range cmds {
		sp, ok := parameters.SpacingFunction(cmd)
		if !ok {
			return core.Error(core.EMISSING, "no spacing command %q", cmd)
		}
		data = append(data, []string{cmd, sp.Size.String(), sp.ClassName})
	}
	return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
}

// mixed TEXT
func (intp *Intp) mixed(text string) error {
	out, err := preprocess.RenderMixed(text, intp, preprocess.Config{})
	if err != nil {
		return err
	}
	intp.last = nil
	pterm.Println(out)
	return nil
}

// RenderMath renders a formula as a flat sequence of symbol spans, one per
// character. It is sufficient to inspect font selection for mixed text.
func (intp *Intp) RenderMath(math string) (string, error) {
	var sb strings.Builder
	sb.WriteString(`<span class="base">`)
	for _, r := range math {
		if unicode.IsSpace(r) {
			continue
		}
		value := string(r)
		sym, ok := intp.builder.Symbols().Lookup(intp.mode, value)
		if !ok {
			return "", core.Error(core.EMISSING, "unknown symbol %q", value)
		}
		var b *box.Box
		var err error
		switch sym.Group {
		case symbols.MathOrd, symbols.TextOrd:
			b, err = intp.builder.MathDefault(value, intp.mode, "", []string{"mord"}, sym.Group)
		default:
			b = intp.builder.Mathsym(value, intp.mode, "", []string{"m" + string(sym.Group)})
		}
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&sb, `<span class="%s">%s</span>`, strings.Join(b.Classes(), " "), b.Text())
	}
	sb.WriteString(`</span>`)
	return sb.String(), nil
}

// graph [FILE]
func (intp *Intp) graph(args []string) error {
	if intp.last == nil {
		return core.Error(core.EMISSING, "no box to draw")
	}
	var w io.Writer = os.Stdout
	if len(args) > 0 {
		f, err := os.Create(args[0])
		if err != nil {
			return core.WrapError(err, core.EINVALID, "cannot create %s", args[0])
		}
		defer f.Close()
		w = f
	}
	return boxdebug.ToGraphViz(intp.last, w)
}

func parseFace(name string) (font.Face, error) {
	for _, f := range font.Faces() {
		if strings.EqualFold(string(f), name) {
			return f, nil
		}
	}
	return "", core.Error(core.EINVALID, "unknown face %q, try faces", name)
}

// completer completes commands, and symbol names after sym, var and mathsym.
func (intp *Intp) completer() readline.AutoCompleter {
	symbolNames := func(line string) []string {
		f := strings.Fields(line)
		prefix := ""
		if len(f) > 0 && !strings.HasSuffix(line, " ") {
			prefix = f[len(f)-1]
		}
		if !strings.HasPrefix(prefix, `\`) {
			return nil
		}
		return intp.builder.Symbols().Complete(intp.mode, prefix)
	}
	faces := make([]readline.PrefixCompleterInterface, 0, len(font.Faces()))
	for _, f := range font.Faces() {
		faces = append(faces, readline.PcItem(string(f), readline.PcItemDynamic(symbolNames)))
	}
	variants := make([]readline.PrefixCompleterInterface, 0, 9)
	for _, n := range fontvariant.Names() {
		variants = append(variants, readline.PcItem(string(n), readline.PcItemDynamic(symbolNames)))
	}
	positions := make([]readline.PrefixCompleterInterface, 0, 5)
	for pt := box.IndividualShift; pt <= box.FirstBaseline; pt++ {
		positions = append(positions, readline.PcItem(pt.String()))
	}
	return readline.NewPrefixCompleter(
		readline.PcItem("sym", faces...),
		readline.PcItem("var", variants...),
		readline.PcItem("mathsym", readline.PcItemDynamic(symbolNames)),
		readline.PcItem("vlist", positions...),
		readline.PcItem("space"),
		readline.PcItem("size"),
		readline.PcItem("mode", readline.PcItem("math"), readline.PcItem("text")),
		readline.PcItem("mixed"),
		readline.PcItem("faces"),
		readline.PcItem("graph"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

func (intp *Intp) show() {
	for _, m := range intp.missing {
		pterm.Warning.Printfln("missing metrics for %s", m)
	}
	if intp.last == nil {
		return
	}
	if err := printTree(intp.last); err != nil {
		pterm.Error.Println(err.Error())
	}
}

func help() {
	pterm.Info.Println("Commands")
	pterm.Println(`
	sym FACE VALUE              set a symbol in a face, e.g. sym Main-Regular A
	var NAME VALUE [TYPE]       set a symbol in a font variant, e.g. var mathbb R
	mathsym VALUE               set a relation, operator or delimiter
	vlist POS DATA ITEM…        stack struts h:d[:f][@shift] and kerns kern:s
	                            POS is one of individualShift, top, bottom,
	                            shift, firstBaseline
	space [CMD]                 show spacing commands
	size [N]                    show or set the size level 1…10
	mode math|text              switch symbol mode
	mixed TEXT                  render text with $math$
	faces                       list font faces
	graph [FILE]                write last box tree as GraphViz DOT
	quit
	`)
}
