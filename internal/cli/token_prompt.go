package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/overtime/internal/toggl"
	"github.com/charmbracelet/huh"
)

// resolveToken picks the API token in priority order: --token flag,
// environment, interactive prompt. Non-interactive runs with no token fail
// up front rather than inside the fetch.
func resolveToken(app *App, flagToken string) (string, error) {
	if flagToken != "" {
		return flagToken, nil
	}
	if app.EnvToken != "" {
		return app.EnvToken, nil
	}
	if app.IsInteractive() {
		return promptToken()
	}
	return "", toggl.ErrMissingToken
}

func promptToken() (string, error) {
	var token string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Toggl API token").
				Description("Found under Profile → API Token on track.toggl.com").
				EchoMode(huh.EchoModePassword).
				Value(&token).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return errors.New("token must not be empty")
					}
					return nil
				}),
		),
	).WithShowHelp(false)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("reading token: %w", err)
	}
	return strings.TrimSpace(token), nil
}
