// Package tui provides songsmith's interactive studio.
//
// The studio shows one tab per text tool (vowel extension, background
// vocals, chord and note interleaving, tag optimization, structure
// skeletons, style prompts) plus the lyric sheet being assembled. Each
// tool tab has input fields, an optional selector and a live preview.
//
// Usage:
//
//	program, studio := tui.NewStudioProgram(tui.Options{
//	    Strings:  i18n.MustLoad("en"),
//	    Catalog:  cat,
//	    Library:  db,
//	    Settings: db,
//	})
//	go catalog.Watch(ctx, path, func(c *catalog.Catalog) {
//	    program.Send(tui.CatalogReloadedMsg{Catalog: c})
//	})
//	_, err := program.Run()
//	studio.Close()
package tui
