package main

import (
	"fmt"
	"io"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/iammorganparry/bankdash/internal/tui"
	"github.com/iammorganparry/bankdash/internal/view"
)

func runTUICmd(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	// stdout belongs to the terminal UI
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	ds, err := loadDataset(cfg, logger)
	if err != nil {
		return err
	}
	binding, err := view.NewBinding(ds)
	if err != nil {
		return fmt.Errorf("initial panels: %w", err)
	}

	p := tea.NewProgram(
		tui.NewModel(binding, view.NewLayout(cfg.Title), cfg.Debug),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run terminal dashboard: %w", err)
	}
	return nil
}
