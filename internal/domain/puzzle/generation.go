package puzzle

import "strconv"

// Defaults used by the generator script when a request omits a knob.
const (
	DefaultMaxWords    = 100
	DefaultMaxAttempts = 15
	DefaultThemeWords  = 3
	DefaultWordTokens  = 500
	DefaultHintTokens  = 300
)

// HintCount is the number of clues a puzzle carries: five across, five down.
const HintCount = 10

type GenerateParams struct {
	Theme       string
	Regenerate  bool
	MaxWords    int
	MaxAttempts int
	ThemeWords  int
	WordTokens  int
	HintTokens  int
}

// Args renders the params as the generator's positional arguments:
// theme regenerate maxWords maxAttempts themeWords wordTokens hintTokens.
func (p GenerateParams) Args() []string {
	return []string{
		p.Theme,
		strconv.FormatBool(p.Regenerate),
		strconv.Itoa(p.MaxWords),
		strconv.Itoa(p.MaxAttempts),
		strconv.Itoa(p.ThemeWords),
		strconv.Itoa(p.WordTokens),
		strconv.Itoa(p.HintTokens),
	}
}

// GenerationOutcome is the payload printed by the generator.
type GenerationOutcome struct {
	Solution []string `json:"solution"`
	Hints    []string `json:"hints"`
	Success  bool     `json:"success"`
}
