package main

import (
	"flag"
	"log"

	"origamiview/internal/viewer"
	"origamiview/internal/window"
)

func main() {
	var o viewer.Options
	flag.StringVar(&o.ConfigPath, "config", "", "TOML config file.")
	flag.BoolVar(&o.Demo, "demo", false, "Show the synthetic demo curves.")
	flag.StringVar(&o.Transform, "transform", "", "Coordinate convention override: identity or flipz.")
	flag.Parse()
	o.Path = flag.Arg(0)

	cfg, ds, err := viewer.Setup(o)
	if err != nil {
		log.Fatal(err)
	}
	s := &window.Surface{}
	v, err := viewer.New(cfg, s, nil)
	if err != nil {
		log.Fatal(err)
	}
	v.Load(ds)

	if err := window.Run(window.New(v, s), "origamiview - "+ds.Name); err != nil {
		log.Fatal(err)
	}
}
