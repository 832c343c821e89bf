// Package cursive is a synchronous text-mode application shell. It owns a
// tree of widgets, drives a layout→draw→input→dispatch loop against a
// terminal driver, and routes key events through the tree with a
// bubble-to-global fallback.
//
//	c, err := cursive.New()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer c.Close()
//
//	c.AddLayer(cursive.NewTextView("Hello World!\nPress q to quit."))
//	c.AddGlobalCallback(cursive.FromRune('q'), func(c *cursive.Cursive) { c.Quit() })
//	c.Run()
//
// Everything runs on the calling goroutine: layout always precedes draw
// within a frame, draw precedes the input read, and dispatch for a key
// (including any follow-up callback) completes before the next frame begins.
package cursive
