package main

import (
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/atomicstack/cursive"
	"github.com/atomicstack/cursive/internal/logging"
)

func main() {
	cfg := MustLoad()
	if err := Validate(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration error: %v\n", err)
		os.Exit(2)
	}
	logging.Configure(cfg.Logging.FilePath)
	logging.SetTraceEnabled(cfg.Logging.Trace)

	logging.Trace("demo.start", startupTracePayload(cfg))

	if err := run(cfg); err != nil {
		logging.Error(err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg Config) error {
	c, err := cursive.New()
	if err != nil {
		return fmt.Errorf("open terminal: %w", err)
	}
	defer c.Close()
	c.SetFPS(cfg.FPS)

	help := "cursive demo\n\n" +
		"enter  open the menu\n" +
		"esc    close the top layer, or quit"
	c.AddLayer(cursive.NewTextView(help).SetName("help"))

	c.AddGlobalCallback(cursive.KeyEnter, openMenu)
	c.AddGlobalCallback(cursive.KeyEsc, func(c *cursive.Cursive) {
		if c.Screen().LayerCount() > 1 {
			c.PopLayer()
			return
		}
		c.Quit()
	})

	c.Run()
	return nil
}

func openMenu(c *cursive.Cursive) {
	if _, open := cursive.FindView[*cursive.SelectView](c, cursive.ByName("menu")); open {
		return
	}
	list := cursive.NewSelectView(
		cursive.Item{ID: "apple", Label: "Apple"},
		cursive.Item{ID: "banana", Label: "Banana"},
		cursive.Item{ID: "cherry", Label: "Cherry"},
		cursive.Item{ID: "quince", Label: "Quince"},
	).SetName("menu").SetOnSubmit(func(c *cursive.Cursive, item cursive.Item) {
		c.PopLayer() // the menu
		c.AddLayer(cursive.NewDialog(
			cursive.NewTextView("You picked: "+item.Label),
		).SetTitle("Result").AddButton("OK", func(c *cursive.Cursive) {
			c.PopLayer()
		}))
	})
	c.AddLayer(cursive.NewDialog(list).SetTitle("Fruit"))
}

// startupTracePayload bundles runtime context for trace logging.
func startupTracePayload(cfg Config) map[string]interface{} {
	flags := make(map[string]interface{}, len(cfg.Flags))
	for k, v := range cfg.Flags {
		flags[k] = v
	}
	payload := map[string]interface{}{
		"argv":  cfg.Args,
		"flags": flags,
	}
	if exe, err := os.Executable(); err == nil {
		payload["executable"] = exe
	} else {
		payload["executableError"] = err.Error()
	}
	if cwd, err := os.Getwd(); err == nil {
		payload["cwd"] = cwd
	} else {
		payload["cwdError"] = err.Error()
	}
	payload["tty"] = collectTTYDetails()
	return payload
}

type ttyDetails struct {
	Detected *ttyDetected     `json:"detected,omitempty"`
	Probes   []ttyProbeResult `json:"probes"`
}

type ttyDetected struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type ttyProbeResult struct {
	Name       string `json:"name"`
	IsTerminal bool   `json:"is_terminal"`
	Width      int    `json:"width,omitempty"`
	Height     int    `json:"height,omitempty"`
	Error      string `json:"error,omitempty"`
}

// collectTTYDetails inspects standard descriptors for terminal support and
// dimensions.
func collectTTYDetails() ttyDetails {
	probes := []struct {
		name string
		fd   uintptr
	}{
		{"stdin", os.Stdin.Fd()},
		{"stdout", os.Stdout.Fd()},
		{"stderr", os.Stderr.Fd()},
	}
	results := make([]ttyProbeResult, 0, len(probes))
	var detected *ttyDetected
	for _, probe := range probes {
		entry := ttyProbeResult{Name: probe.name}
		fd := int(probe.fd)
		if fd >= 0 && term.IsTerminal(fd) {
			entry.IsTerminal = true
			if width, height, err := term.GetSize(fd); err == nil {
				entry.Width = width
				entry.Height = height
				if detected == nil {
					detected = &ttyDetected{Source: probe.name, Width: width, Height: height}
				}
			} else {
				entry.Error = err.Error()
			}
		}
		results = append(results, entry)
	}
	return ttyDetails{Detected: detected, Probes: results}
}
