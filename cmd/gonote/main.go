package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/ionut-t/gonote/core"
	"github.com/ionut-t/gonote/notepad"
	"github.com/muesli/termenv"
)

func main() {
	dark := flag.Bool("dark", termenv.HasDarkBackground(), "start in dark mode")
	fontSize := flag.Int("font-size", core.DefaultFontSize, "font size in points (8-40)")
	fontColor := flag.String("font-color", "", "text color as #rrggbb")
	syntax := flag.Bool("syntax", false, "colour text by file type")
	theme := flag.String("theme", "monokai", "syntax colour theme")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: gonote [flags] [file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0), notepad.Options{
		DarkMode:    *dark,
		FontSize:    *fontSize,
		FontColor:   *fontColor,
		Syntax:      *syntax,
		SyntaxTheme: *theme,
	}); err != nil {
		fmt.Fprintf(os.Stderr, "gonote: %v\n", err)
		os.Exit(1)
	}
}

func run(path string, opts notepad.Options) error {
	// The terminal belongs to the UI, so logs go to a file or nowhere.
	if logPath := os.Getenv("GONOTE_DEBUG"); logPath != "" {
		f, err := tea.LogToFile(logPath, "gonote")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts.Path = path

	p := tea.NewProgram(
		notepad.New(opts),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	_, err := p.Run()
	return err
}
