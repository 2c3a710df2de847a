// Demo program: a tabbed debug panel with a counter, driven by a button,
// a checkbox, and a radio group.
package main

import (
	"fmt"
	"log"

	"github.com/debugtools/dui"
	"github.com/debugtools/dui/backend/opengl"
)

const (
	tab1 = iota
	tab2
	tab3
	tab4
)

const (
	increment = iota
	decrement
)

func main() {
	win, err := opengl.NewWindow("dui demo", 800, 600)
	if err != nil {
		log.Fatal(err)
	}
	defer win.Close()

	renderer, err := opengl.NewRenderer(win.Size())
	if err != nil {
		log.Fatal(err)
	}
	defer renderer.Delete()

	ui, err := dui.New(renderer)
	if err != nil {
		log.Fatal(err)
	}
	defer ui.Close()

	tabIndex := tab1
	incDecIndex := increment
	autoTick := false
	counter := 0

	for !win.ShouldClose() {
		input := win.PollInput()

		ui.Begin(input)
		renderer.Clear(dui.RGBA(0x33, 0x33, 0x33, 0xFF))

		ui.MoveTo(8, 8)
		ui.BeginTabBar()

		if ui.Tab("TAB1", tab1, &tabIndex) {
			ui.PanelStartAt(8, 40, "COUNTER", 800-16, 600-48, true)

			ui.Println("TAB #1")
			ui.Newline()

			ui.Printf("COUNTER: %d", counter)
			ui.Newline()
			ui.Newline()

			if ui.Button("TICK!") || autoTick {
				if incDecIndex == increment {
					counter++
				} else {
					counter--
				}
			}

			ui.Checkbox("AUTO TICK", &autoTick)

			ui.Newline()
			ui.Newline()

			ui.Radio("INCREMENT", increment, &incDecIndex)
			ui.Newline()
			ui.Newline()

			ui.Radio("DECREMENT", decrement, &incDecIndex)

			ui.PanelEnd()
		}

		if ui.Tab("TAB2", tab2, &tabIndex) {
			ui.PanelStartAt(8, 40, "", 800-16, 600-48, true)
			ui.Println("TAB #2")
			ui.PanelEnd()
		}

		if ui.Tab("TAB3", tab3, &tabIndex) {
			ui.PanelStartAt(8, 40, "", 800-16, 600-48, true)
			ui.Println("TAB #3")
			ui.PanelEnd()
		}

		if ui.Tab("TAB4", tab4, &tabIndex) {
			ui.PanelStartAt(8, 40, "", 800-16, 600-48, true)
			ui.Println("TAB #4")
			ui.PanelEnd()
		}

		// Pointer readout in the top-right corner, above everything.
		ui.BeginOverlay()
		ui.PrintAt(800-160, 8, fmt.Sprintf("%d,%d", int(input.Pos.X), int(input.Pos.Y)))
		ui.EndOverlay()

		ui.Render()
		win.Swap()
	}
}
