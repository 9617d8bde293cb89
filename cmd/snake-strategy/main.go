package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/snake-strategy/audio"
	"github.com/lixenwraith/snake-strategy/engine"
	"github.com/lixenwraith/snake-strategy/input"
	"github.com/lixenwraith/snake-strategy/mode"
	"github.com/lixenwraith/snake-strategy/parameter"
	"github.com/lixenwraith/snake-strategy/render"
)

var (
	configPath = flag.String("config", "", "Path to a TOML config file (defaults when empty)")
	debugFlag  = flag.Bool("debug", false, "Write a debug log under logs/")
	muteFlag   = flag.Bool("mute", false, "Disable audio cues")
	editorFlag = flag.Bool("editor", true, "Start in editor mode (false starts the battle immediately)")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := parameter.LoadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}
	log.Printf("config loaded from %q: %.0fx%.0f block %.0f, %d fps", *configPath,
		cfg.Playfield.Width, cfg.Playfield.Height, cfg.Playfield.BlockSize, cfg.Playfield.FrameRate)

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize screen: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Panic recovery: restore the terminal before printing the crash
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mSNAKE-STRATEGY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	screen.EnableMouse()
	screen.SetStyle(tcell.StyleDefault.Background(render.RgbBackground))

	sim := engine.NewSimulation(cfg)
	session := mode.NewSession(sim)
	if !*editorFlag {
		session.ToggleEditorMode()
	}

	layout := render.NewLayout(cfg.Playfield)
	renderer := render.NewRenderer(screen, layout)
	inputHandler := input.NewHandler(session, layout)

	if w, h := screen.Size(); w < layout.Width() || h < layout.Height() {
		log.Printf("terminal %dx%d is smaller than the %dx%d layout", w, h, layout.Width(), layout.Height())
	}

	var player *audio.Player
	if cfg.Audio.Enabled {
		player = audio.NewPlayer(cfg.Audio)
		if err := player.Initialize(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
			player = nil
		} else {
			defer player.Cleanup()
		}
	}

	eventChan := make(chan tcell.Event, 256)
	// Input polling uses a raw goroutine as it interacts directly with the terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				screen.Fini()
				fmt.Fprintf(os.Stderr, "\r\n\x1b[31mEVENT POLLER CRASHED: %v\x1b[0m\r\n", r)
				fmt.Fprintf(os.Stderr, "Stack Trace:\r\n%s\r\n", debug.Stack())
				os.Exit(1)
			}
		}()

		for {
			ev := screen.PollEvent()
			// Nil on screen finalization
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var winnerLogged bool
	frameTicker := time.NewTicker(cfg.Playfield.FrameInterval())
	defer frameTicker.Stop()

	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				if player != nil && ev.Key() == tcell.KeyRune && ev.Rune() == 'm' {
					log.Printf("audio muted: %v", player.ToggleMute())
				}
			}
			if !inputHandler.HandleEvent(ev) {
				log.Printf("exit at tick %d, counts %+v", sim.TickCount(), sim.Counts())
				return
			}

		case <-frameTicker.C:
			// Input is applied, then one tick, then rendering
			session.Step()
			events := sim.Events().Consume()
			if player != nil {
				player.Play(events)
			}
			winner, decided := sim.Winner()
			if decided && !winnerLogged && !session.EditorMode {
				log.Printf("tick %d: %s holds the field", sim.TickCount(), winner)
			}
			winnerLogged = decided
			renderer.RenderFrame(session)
		}
	}
}
