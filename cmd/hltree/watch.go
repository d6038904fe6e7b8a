package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"hltree/internal/theme"
	"hltree/internal/tui"
)

var watchCfg struct {
	theme string
	lang  string
}

var watchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Re-render a file's highlighted spans every time it changes on disk",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().StringVar(&watchCfg.theme, "theme", "nord", "color theme")
	watchCmd.Flags().StringVar(&watchCfg.lang, "lang", "", "override language detection")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	path := args[0]
	th, err := theme.Load(watchCfg.theme)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("hltree: starting watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("hltree: watching %s: %w", path, err)
	}

	render := func() {
		result, err := highlightFile(path, watchCfg.lang, "")
		if err != nil {
			fmt.Fprintf(os.Stderr, "hltree: %v\n", err)
			return
		}
		fmt.Print("\033[2J\033[H")
		for _, line := range tui.RenderDocument(result.Source, toTUISpans(result.Spans), th, 0) {
			fmt.Println(line)
		}
	}

	render()
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	for event := range watcher.Events {
		eventAbs, err := filepath.Abs(event.Name)
		if err != nil || eventAbs != abs {
			continue
		}
		if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
			render()
		}
	}
	return nil
}
