/*
Command mathbox is an interactive tool for inspecting the math box layer.

It builds symbol boxes and vertical lists from commands typed at a prompt
and shows the resulting box trees, sizes and classes.

Usage:

	mathbox [-trace level] [-font pattern]

Type "help" at the prompt for a list of commands.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>
*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/npillmayer/mathbox/core/font"
	"github.com/npillmayer/mathbox/core/font/fontregistry"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'tyse.build'
func tracer() tracing.Trace {
	return tracing.Select("tyse.build")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":    "go",
		"trace.tyse.build":   "Info",
		"trace.tyse.box":     "Error",
		"trace.tyse.fonts":   "Error",
		"trace.tyse.symbols": "Error",
		"trace.tyse.input":   "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	fontpattern := flag.String("font", "", "System font to use for Main-Regular")
	flag.Parse()
	tracer().SetTraceLevel(tracing.LevelError) // will set the correct level later
	pterm.Info.Println("Welcome to the math box CLI")
	tracer().Infof("Trace level is %s", *tlevel)
	//
	// set up fonts
	registry := fontregistry.NewLatinModernRegistry()
	if *fontpattern != "" {
		if _, err := registry.LocateFace(font.MainRegular, *fontpattern); err != nil {
			pterm.Error.Println(err.Error())
			os.Exit(4)
		}
	}
	intp := NewIntp(registry)
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "mathbox > ",
		AutoComplete: intp.completer(),
	})
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp.repl = repl
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D") // inform user how to stop the CLI
	tracer().SetTraceLevel(tracing.TraceLevelFromString(*tlevel))
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}
