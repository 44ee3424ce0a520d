package main

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/yungbote/crossword-backend/internal/app"
)

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Print a stored puzzle",
	Args:  cobra.ExactArgs(1),
	RunE:  runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	id, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid puzzle id %q: %w", args[0], err)
	}

	a, err := app.New(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.Services.Puzzle.GetByID(cmd.Context(), nil, id)
	if err != nil {
		return fmt.Errorf("show puzzle %s: %w", id, err)
	}
	return printJSON(cmd.OutOrStdout(), view)
}
