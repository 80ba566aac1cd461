package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"origamiview/internal/render"
	"origamiview/internal/tui"
	"origamiview/internal/viewer"
	"origamiview/internal/watch"
)

func main() {
	var o viewer.Options
	var watchFile, headless, printConfig bool
	var ticks uint64
	var size, logPath string
	flag.StringVar(&o.ConfigPath, "config", "", "TOML config file.")
	flag.BoolVar(&o.Demo, "demo", false, "Show the synthetic demo curves.")
	flag.StringVar(&o.Transform, "transform", "", "Coordinate convention override: identity or flipz.")
	flag.BoolVar(&watchFile, "watch", false, "Reload the file when it changes.")
	flag.BoolVar(&headless, "headless", false, "Render without a terminal UI and print the last frame.")
	flag.Uint64Var(&ticks, "ticks", 1, "Frames to render in headless mode (0 = until interrupted).")
	flag.StringVar(&size, "size", "80x24", "Headless output size in cells, WxH.")
	flag.StringVar(&logPath, "log", "", "Log file for the terminal UI (default from config).")
	flag.BoolVar(&printConfig, "print-config", false, "Print the effective config as TOML and exit.")
	flag.Parse()
	o.Path = flag.Arg(0)

	cfg, ds, err := viewer.Setup(o)
	if err != nil {
		log.Fatal(err)
	}
	if printConfig {
		if err := cfg.Write(os.Stdout); err != nil {
			log.Fatal(err)
		}
		return
	}

	if headless {
		w, h, err := viewer.ParseSize(size)
		if err != nil {
			log.Fatal(err)
		}
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		frame, err := viewer.RenderHeadless(ctx, cfg, ds, w, h, ticks, nil)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println(frame)
		return
	}

	if logPath == "" {
		logPath = cfg.LogFile
	}
	f, err := tea.LogToFile(logPath, "origamiview")
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	br := render.NewBraille(1, 1)
	v, err := viewer.New(cfg, br, nil)
	if err != nil {
		log.Fatal(err)
	}
	defer v.Close()
	v.Load(ds)

	var m tui.Model
	if o.Path == "" {
		m = tui.New(v, br)
	} else {
		m = tui.NewWithPath(v, br, o.Path)
		if watchFile {
			w, err := watch.New(o.Path)
			if err != nil {
				log.Fatal(err)
			}
			defer w.Close()
			m = m.WithWatcher(w)
		}
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		log.Fatal(err)
	}
}
