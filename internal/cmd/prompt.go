package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/zenibako/qlab-csv/templates"
)

// Replaced in tests.
var (
	isTerminal     = func() bool { return term.IsTerminal(int(os.Stdin.Fd())) }
	promptTemplate = promptTemplateWithHuh
)

var templateDescriptions = map[templates.Kind]string{
	templates.KindSimple: "Simple (LX, Sound and Video start cues)",
	templates.KindX32:    "X32 (Mute and DCA columns drive the mixer)",
}

// promptTemplateWithHuh asks which template to use, starting on detected.
func promptTemplateWithHuh(path string, detected templates.Kind) (templates.Kind, error) {
	choice := detected

	options := make([]huh.Option[templates.Kind], 0, len(templates.Kinds))
	for _, kind := range templates.Kinds {
		options = append(options, huh.NewOption(templateDescriptions[kind], kind))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[templates.Kind]().
				Title(fmt.Sprintf("Which template should be used for %s?", path)).
				Description(fmt.Sprintf("Detected from the header row: %s", detected)).
				Options(options...).
				Value(&choice),
		),
	)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to get template choice: %w", err)
	}

	return choice, nil
}
