package main

import (
	"flag"

	tunerapp "github.com/edward-ap/minituner/internal/tunerapp"
)

func main() {
	trace := flag.Bool("traceLog", false, "log every frequency reading fed to the gauge")
	mode := flag.String("mode", "", "feed to start with: strings, sweep or manual (overrides config)")
	flag.Parse()
	tunerapp.SetTraceLogEnabled(*trace)

	app := tunerapp.NewApp(tunerapp.Options{Mode: *mode})
	app.Run()
}
