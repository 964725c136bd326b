package main

import (
	"flag"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	panelreeldemo "github.com/framegrace/panelreel/apps/panelreel-demo"
	"github.com/framegrace/panelreel/fade"
	"github.com/framegrace/panelreel/standalone"
	"github.com/framegrace/panelreel/theme"
)

func main() {
	palette := flag.String("palette", "mocha", "palette name (embedded or from the user config dir)")
	fadeMS := flag.Int("fade", 600, "exit fade duration in milliseconds")
	flag.Parse()

	if err := theme.Init(*palette); err != nil {
		log.Fatalf("panelreel-demo: %v", err)
	}
	app, err := panelreeldemo.New()
	if err != nil {
		log.Fatalf("panelreel-demo: %v", err)
	}
	opts := standalone.Options{
		OnExit: func(screen tcell.Screen) {
			fade.Out(screen, fade.Snapshot(app.Render()), time.Duration(*fadeMS)*time.Millisecond)
		},
	}
	if err := standalone.Run(app, opts); err != nil {
		log.Fatalf("panelreel-demo: %v", err)
	}
}
