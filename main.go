package main

import (
	"flag"
	"log"
	"time"

	"github.com/leonelquinteros/gotext"

	"tilerunner/pkg/engine/input"
	"tilerunner/pkg/game/gameplay"
	"tilerunner/pkg/game/picture"
	"tilerunner/pkg/game/renderer"
	ebitenrenderer "tilerunner/pkg/game/renderer/ebiten"
	"tilerunner/pkg/game/renderer/tui"
	"tilerunner/pkg/game/state"
)

func initGettext() {
	gotext.Configure("mo", "en_GB.utf8", "default")
}

// loadSource resolves the puzzle picture: a decoded file when one was given,
// the procedural fallback otherwise.
func loadSource(cache *picture.Cache, path string) *picture.Source {
	if path == "" {
		return picture.Generate()
	}

	src, err := cache.Load(path)
	if err != nil {
		log.Fatalf("Cannot load picture: %v", err)
	}
	return src
}

// buildGame creates a new game and shuffles it so the first frame is already
// a puzzle.
func buildGame(src *picture.Source, size int, seed int64) *state.Game {
	g, err := state.NewGame(src, size)
	if err != nil {
		log.Fatalf("Cannot create puzzle: %v", err)
	}

	gameplay.ShuffleBoard(g, seed)

	g.ClearMessages()
	g.AddMessage(renderer.FormatString("Welcome! Slide the runner until the picture is whole."))
	g.AddMessage(renderer.FormatString("ACTION{m} shuffles, ACTION{n} shows the full picture, ACTION{g} changes grid size."))

	return g
}

func main() {
	imagePath := flag.String("image", "", "picture to slice into tiles (png or jpeg); built-in picture when empty")
	size := flag.Int("size", 4, "grid size N for an NxN puzzle")
	useTUI := flag.Bool("tui", false, "render in the terminal instead of a window")
	seed := flag.Int64("seed", 0, "shuffle seed (0 = time-based)")
	flag.Parse()

	initGettext()
	renderer.InitColors()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	cache := picture.NewCache()
	g := buildGame(loadSource(cache, *imagePath), *size, *seed)

	if *useTUI {
		renderer.SetRenderer(tui.New())
		renderer.Init()

		for {
			mainLoop(g)
		}
	}

	e := ebitenrenderer.New()
	renderer.SetRenderer(e)
	renderer.Init()
	renderer.RenderFrame(g)

	go consumeIntents(e, g)

	if err := e.Run(); err != nil {
		log.Fatalf("Renderer stopped: %v", err)
	}
}

// mainLoop runs one TUI frame: paint, block on a key, dispatch.
func mainLoop(g *state.Game) {
	renderer.Clear()
	renderer.RenderFrame(g)

	raw := input.RawInput{
		Device:    input.DeviceTerminal,
		Code:      renderer.GetInput(),
		Timestamp: time.Now(),
	}
	intent := input.MapToIntent(input.NewDebouncedInput(raw))

	gameplay.ProcessIntent(g, intent)
}

// consumeIntents is the game-loop goroutine for the Ebiten backend: it
// applies each published intent and hands the renderer a fresh frame.
func consumeIntents(e *ebitenrenderer.EbitenRenderer, g *state.Game) {
	for intent := range e.InputIntents() {
		gameplay.ProcessIntent(g, intent)
		renderer.RenderFrame(g)
	}
}
