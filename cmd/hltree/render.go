package main

import (
	"encoding/json"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"hltree/internal/theme"
	"hltree/internal/tui"
)

var renderCfg struct {
	theme   string
	lang    string
	json    bool
	noCache bool
}

var renderCmd = &cobra.Command{
	Use:   "render <file>",
	Short: "Render a file's highlighted spans to the terminal or as JSON",
	Long:  "render parses <file> with the grammar matching its extension (override with --lang, one of: " + availableLanguages() + ") and either opens an interactive scrolling viewer or, with --json, prints the raw (from, to, classes) spans for scripting.",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVar(&renderCfg.theme, "theme", "nord", "color theme (for example: nord, dracula, monokai, github, solarized-dark)")
	renderCmd.Flags().StringVar(&renderCfg.lang, "lang", "", "override language detection")
	renderCmd.Flags().BoolVar(&renderCfg.json, "json", false, "print spans as JSON lines instead of opening the viewer")
	renderCmd.Flags().BoolVar(&renderCfg.noCache, "no-cache", false, "skip the on-disk render cache")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	path := args[0]

	cacheTheme := renderCfg.theme
	if renderCfg.noCache || renderCfg.json {
		cacheTheme = ""
	}

	result, err := highlightFile(path, renderCfg.lang, cacheTheme)
	if err != nil {
		return err
	}

	if renderCfg.json {
		enc := json.NewEncoder(os.Stdout)
		for _, s := range result.Spans {
			if err := enc.Encode(s); err != nil {
				return err
			}
		}
		return nil
	}

	th, err := theme.Load(renderCfg.theme)
	if err != nil {
		return err
	}

	lines := tui.RenderDocument(result.Source, toTUISpans(result.Spans), th, 0)
	if os.Getenv("HLTREE_NO_TUI") != "" {
		for _, l := range lines {
			fmt.Println(l)
		}
		return nil
	}

	m := tui.New(path, th, lines)
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

func toTUISpans(spans []spanResult) []tui.Span {
	out := make([]tui.Span, len(spans))
	for i, s := range spans {
		out[i] = tui.Span{From: s.From, To: s.To, Classes: s.Classes}
	}
	return out
}
