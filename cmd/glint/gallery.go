package main

import (
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/glintlabs/glint/internal/layout"
	"github.com/glintlabs/glint/internal/logger"
	"github.com/glintlabs/glint/internal/widgets"
	"github.com/glintlabs/glint/internal/window"
)

func newGalleryCmd(flags *rootFlags, log *logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "gallery",
		Short: "Show a demo window with one of each widget",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGallery(flags, log)
		},
	}
}

func runGallery(flags *rootFlags, log *logger.Logger) error {
	reg, err := newRegistry(flags)
	if err != nil {
		return err
	}

	progress := widgets.NewProgress(24)
	progress.SetPercent(0.6)

	group := widgets.NewRadioGroup("density", nil)
	compact := group.Radio("compact")
	comfortable := group.Radio("comfortable")
	compact.Select()

	input := widgets.NewInput("type here")
	input.SetWidth(24)

	files := widgets.NewTable(
		[]table.Column{{Title: "Theme", Width: 12}, {Title: "Parent", Width: 12}},
		[]table.Row{{"dark", "_dark_base"}, {"light", "_light_base"}},
		4,
	)

	var style any
	if flags.style != "" {
		style = flags.style
	}

	w, err := window.New(window.Config{
		Title:    "glint gallery",
		Name:     "gallery",
		Style:    style,
		Registry: reg,
		Store:    defaultStore("gallery", log),
		Logger:   log,
		Layout: layout.Layout{
			{widgets.NewText("Widget gallery")},
			{widgets.NewSeparator(40)},
			{widgets.NewButton("OK", nil), widgets.NewButton("Cancel", nil)},
			{widgets.NewCheckbox("Enable previews", nil)},
			{compact, comfortable},
			{input},
			{progress},
			{files},
			{widgets.NewSpinner("loading")},
		},
		Scroll:         map[string]any{"scroll_y": true, "fill_y": true},
		ElementPadding: layout.XY{X: 1},
	})
	if err != nil {
		return err
	}
	defer w.Close()

	_, err = tea.NewProgram(w, tea.WithAltScreen(), tea.WithMouseCellMotion()).Run()
	return err
}
