// Package main is an interactive demonstration of key binding dispatch in a
// terminal. It shows each input as it arrives, the ongoing sequence while a
// multi-key binding is in progress, and the action when a binding fires.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/keybind"
	"github.com/dshills/keybind/keymap"
	"github.com/dshills/keybind/tcellkeys"
)

func main() {
	os.Exit(run())
}

func run() int {
	opts := parseFlags()

	binds, err := loadBindings(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to load bindings: %v\n", err)
		return 1
	}

	dispatcher := keybind.NewDispatcher(binds)
	dispatcher.SetTimeout(opts.timeout)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to create screen: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize screen: %v\n", err)
		return 1
	}
	defer screen.Fini()

	if err := eventLoop(screen, dispatcher); err != nil {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type options struct {
	configPath string
	timeout    time.Duration
}

func parseFlags() options {
	var opts options
	var showHelp bool

	flag.StringVar(&opts.configPath, "config", "", "Path to keymap file (.toml or .json)")
	flag.StringVar(&opts.configPath, "c", "", "Path to keymap file (shorthand)")
	flag.DurationVar(&opts.timeout, "timeout", keybind.DefaultTimeout, "Sequence timeout")
	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "keybind-demo - interactive key binding playground\n\n")
		fmt.Fprintf(os.Stderr, "Usage: keybind-demo [options]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nPress keys to see dispatch outcomes. Ctrl+x Ctrl+c quits.\n")
	}

	flag.Parse()

	if showHelp {
		flag.Usage()
		os.Exit(0)
	}

	return opts
}

// loadBindings loads the keymap file when given, or falls back to a built-in
// demonstration set that exercises single keys, modifier combinations, and
// ambiguous multi-key sequences.
func loadBindings(path string) (*keybind.Keybinds[string], error) {
	if path != "" {
		return keymap.LoadFile(path)
	}

	binds := keybind.NewKeybinds[string]()
	defaults := []struct {
		spec   string
		action string
	}{
		{"Ctrl+x Ctrl+c", "Quit"},
		{"Ctrl+x Ctrl+s", "Save"},
		{"Ctrl+x", "Prefix"},
		{"Ctrl+Alt+Enter", "OpenFile"},
		{"h e l l o", "SayHello"},
		{"Up Up Down Down", "Konami"},
		{"g g", "GoToTop"},
		{"Space", "Leader"},
	}
	for _, d := range defaults {
		if err := binds.Bind(d.spec, d.action); err != nil {
			return nil, err
		}
	}
	return binds, nil
}

// eventLoop feeds screen events into the dispatcher and drives timeout
// resolution on a ticker. It returns when the Quit action fires.
func eventLoop(screen tcell.Screen, dispatcher *keybind.Dispatcher[string]) error {
	events := make(chan tcell.Event)
	quit := make(chan struct{})
	go screen.ChannelEvents(events, quit)
	defer close(quit)

	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()

	var lastLine string
	draw(screen, dispatcher, lastLine)

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if _, isResize := ev.(*tcell.EventResize); isResize {
				screen.Sync()
				continue
			}

			in := tcellkeys.Event(ev)
			out := dispatcher.Feed(in, time.Now())
			if out.Kind == keybind.OutcomeIgnored {
				continue
			}
			lastLine = describe(in.String(), out)
			if out.Kind == keybind.OutcomeFired && out.Action == "Quit" {
				return nil
			}

		case now := <-ticker.C:
			out := dispatcher.CheckTimeout(now)
			if out.Kind == keybind.OutcomeNoOp {
				continue
			}
			lastLine = describe("(timeout)", out)
			if out.Kind == keybind.OutcomeFired && out.Action == "Quit" {
				return nil
			}
		}

		draw(screen, dispatcher, lastLine)
	}
}

func describe(input string, out keybind.Outcome[string]) string {
	switch out.Kind {
	case keybind.OutcomeFired:
		return fmt.Sprintf("%s -> fired %q", input, out.Action)
	case keybind.OutcomePending:
		return fmt.Sprintf("%s -> waiting for more input", input)
	case keybind.OutcomeCleared:
		return fmt.Sprintf("%s -> no match, sequence cleared", input)
	default:
		return input
	}
}

// draw renders the three-line status display.
func draw(screen tcell.Screen, dispatcher *keybind.Dispatcher[string], lastLine string) {
	screen.Clear()

	style := tcell.StyleDefault
	printLine(screen, 0, 0, style.Bold(true), "keybind-demo (Ctrl+x Ctrl+c to quit)")
	printLine(screen, 0, 2, style, lastLine)

	ongoing := ""
	if dispatcher.IsOngoing() {
		ongoing = "ongoing: " + dispatcher.Ongoing().String() + " ..."
	}
	printLine(screen, 0, 3, style.Dim(true), ongoing)

	screen.Show()
}

func printLine(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	for i, r := range []rune(text) {
		screen.SetContent(x+i, y, r, nil, style)
	}
}
