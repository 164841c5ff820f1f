package main

import (
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"vox/internal/config"
)

// printModelCatalog renders the Whisper model catalog with a few usage
// examples. Exits the command successfully without requiring an input.
func printModelCatalog(out io.Writer) {
	rows := make([]table.Row, 0, len(config.Catalog))
	for _, model := range config.Catalog {
		name := model.Name
		if name == config.DefaultModel {
			name += " (default)"
		}
		rows = append(rows, table.Row{name, model.Params, model.VRAM, model.Languages, model.Description})
	}

	fmt.Fprintln(out, "Available Whisper models:")
	fmt.Fprintln(out)
	fmt.Fprintln(out, renderTable(
		table.Row{"Model", "Parameters", "VRAM", "Languages", "Description"},
		rows, 2, 3,
	))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "The bare name \"large\" resolves to large-v3.")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Examples:")
	fmt.Fprintln(out, "  vox recording.mp3")
	fmt.Fprintln(out, "  vox --model medium -f srt,vtt https://example.com/watch?v=abc123")
	fmt.Fprintln(out, "  vox --model large.en interview.wav   # error: large has no .en variant")
}
