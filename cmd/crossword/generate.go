package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yungbote/crossword-backend/internal/app"
	"github.com/yungbote/crossword-backend/internal/domain/puzzle"
)

var generateParams = puzzle.GenerateParams{}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate and store one puzzle, printing the response envelope",
	Args:  cobra.NoArgs,
	RunE:  runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateParams.Theme, "theme", "", "Puzzle theme")
	f.BoolVar(&generateParams.Regenerate, "regenerate", false, "Ask the generator to rebuild its word list")
	f.IntVar(&generateParams.MaxWords, "max-words", puzzle.DefaultMaxWords, "Maximum candidate words")
	f.IntVar(&generateParams.MaxAttempts, "max-attempts", puzzle.DefaultMaxAttempts, "Maximum grid fill attempts")
	f.IntVar(&generateParams.ThemeWords, "theme-words", puzzle.DefaultThemeWords, "Theme words to place")
	f.IntVar(&generateParams.WordTokens, "word-tokens", puzzle.DefaultWordTokens, "Token budget for word generation")
	f.IntVar(&generateParams.HintTokens, "hint-tokens", puzzle.DefaultHintTokens, "Token budget for hint generation")
	_ = generateCmd.MarkFlagRequired("theme")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	a, err := app.New(cmd.Context())
	if err != nil {
		return err
	}
	defer a.Close()

	view, err := a.Services.Puzzle.Generate(cmd.Context(), nil, generateParams)
	if err != nil {
		return fmt.Errorf("generate puzzle: %w", err)
	}
	return printJSON(cmd.OutOrStdout(), view)
}
