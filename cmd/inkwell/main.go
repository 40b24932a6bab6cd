// Package main is a scripted demo of the inkwell editing core. It drives an
// in-memory document surface through formatting, snippet, and palette
// operations, printing the resulting state.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/dshills/inkwell/internal/config"
	"github.com/dshills/inkwell/internal/editor"
	"github.com/dshills/inkwell/internal/input/key"
	"github.com/dshills/inkwell/internal/snippet"
	"github.com/dshills/inkwell/internal/surface"
	"github.com/dshills/inkwell/internal/surface/memory"
)

// Version information (set via ldflags during build).
var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	configPath := flag.String("config", "", "config file (TOML or YAML)")
	showVersion := flag.Bool("version", false, "print version and exit")
	verbose := flag.Bool("verbose", false, "debug logging")
	flag.Parse()

	if *showVersion {
		fmt.Println("inkwell", version)
		return 0
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	logger := log.New(os.Stderr)
	logger.SetLevel(logLevel(cfg.LogLevel))
	if *verbose {
		logger.SetLevel(log.DebugLevel)
	}

	doc := memory.New()
	ed, err := editor.New(doc, editor.WithConfig(cfg), editor.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	script(ed, doc)

	fmt.Println(render(ed, doc))
	return 0
}

// script walks the editor through a representative session.
func script(ed *editor.Editor, doc *memory.Doc) {
	// A numbered verse snippet, its body, and a chorus snippet.
	ed.Snippets().InsertNumbered(snippet.FamilyVerse)
	doc.InsertText("Down by the river")
	ed.Snippets().InsertNumbered(snippet.FamilyChorus)
	doc.InsertText("Carry me home")

	// Bold the chorus body via the shortcut surface.
	body := doc.BlockCount() - 1
	doc.SetSelection(surface.NewSelection(
		surface.Position{Block: body, Offset: 4},
		surface.Position{Block: body, Offset: 13},
	))
	ed.HandleKey(key.MustParse("C-b"))
	ed.RunTurn()

	// Grow it two points, then color it with palette slot 0.
	ed.HandleKey(key.MustParse("C-S-."))
	ed.HandleKey(key.MustParse("C-S-."))
	ed.HandleKey(key.MustParse("C-S-j"))
	ed.RunTurn()

	// Reorder the palette the way a drag would.
	m := ed.Gestures()
	m.DragStart(2)
	m.DragOver(5)
	m.Drop(5)
}

// render formats the document, format state, zoom, and palette swatches.
func render(ed *editor.Editor, doc *memory.Doc) string {
	title := lipgloss.NewStyle().Bold(true)

	out := title.Render("Document") + "\n" + doc.String() + "\n\n"
	out += title.Render("Active formats") + "\n"
	out += fmt.Sprintf("%+v  zoom=%d%%\n\n", ed.FormatState(), ed.Zoom())

	out += title.Render("Palette") + "\n"
	for i, c := range ed.Palette().Colors() {
		sw := lipgloss.NewStyle().Foreground(lipgloss.Color(c))
		marker := " "
		if active, ok := ed.Palette().ActiveIndex(); ok && active == i {
			marker = "*"
		}
		out += fmt.Sprintf("%s %d %s\n", marker, i, sw.Render(c))
	}

	if snap, err := ed.Palette().Snapshot(); err == nil {
		out += "\n" + title.Render("Snapshot") + "\n" + snap + "\n"
	}
	return out
}

func logLevel(s string) log.Level {
	switch s {
	case "debug":
		return log.DebugLevel
	case "info":
		return log.InfoLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.WarnLevel
	}
}
