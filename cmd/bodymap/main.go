package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"bodymap/internal/body"
	"bodymap/internal/config"
	"bodymap/internal/logging"
	"bodymap/internal/svgpath"
	"bodymap/internal/tui"
)

func main() {
	configPath := flag.String("config", "bodymap.toml", "TOML configuration file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: bodymap [-config file] [data-file]\n       bodymap center <path-data>...\n       bodymap svg [-config file] [data-file]\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	args := flag.Args()
	if len(args) > 0 && args[0] == "center" {
		os.Exit(center(os.Stdout, args[1:]))
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}

	if len(args) > 0 && args[0] == "svg" {
		if err := writeSVG(os.Stdout, cfg, args[1:]); err != nil {
			log.Fatal(err)
		}
		return
	}

	if cfg.LogFile != "" {
		f, err := tea.LogToFile(cfg.LogFile, "bodymap")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		level, _ := logging.ParseLevel(cfg.LogLevel)
		logging.SetLogger(logging.NewText(f, level))
	}

	onPress := func(p body.Part) {
		logging.Logger().Info("body part pressed", "slug", p.Slug, "color", p.Color)
	}
	var m tea.Model
	if len(args) > 0 {
		m = tui.NewWithPath(cfg, onPress, args[0])
	} else {
		m = tui.New(cfg, onPress)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}

// center prints the bounding-box center of each path argument, or "none"
// when a path carries no coordinates.
func center(w io.Writer, paths []string) int {
	if len(paths) == 0 {
		fmt.Fprintln(os.Stderr, "usage: bodymap center <path-data>...")
		return 2
	}
	for _, d := range paths {
		c, ok := svgpath.CenterOf(d)
		if !ok {
			fmt.Fprintln(w, "none")
			continue
		}
		fmt.Fprintln(w, strconv.FormatFloat(c.X, 'g', -1, 64), strconv.FormatFloat(c.Y, 'g', -1, 64))
	}
	return 0
}

// writeSVG renders the configured figure, optionally colored by a data file.
func writeSVG(w io.Writer, cfg config.Config, args []string) error {
	var data []body.Part
	if len(args) > 0 {
		var err error
		if data, err = body.LoadData(args[0]); err != nil {
			return err
		}
	}
	opts, err := cfg.Options()
	if err != nil {
		return err
	}
	sc, err := body.Render(body.Gender(cfg.Gender), body.Side(cfg.Side), data, opts)
	if err != nil {
		return err
	}
	return body.WriteSVG(w, sc)
}
