package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/MikeBiancalana/datepicker/internal/caldate"
	"github.com/MikeBiancalana/datepicker/internal/config"
	"github.com/MikeBiancalana/datepicker/internal/logger"
	"github.com/MikeBiancalana/datepicker/internal/sync"
	"github.com/MikeBiancalana/datepicker/internal/tui"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// ErrCancelled is returned when the user leaves the picker without a date.
var ErrCancelled = errors.New("no date selected")

var (
	pickValueFlag string
	pickFormFlag  bool
)

var pickCmd = &cobra.Command{
	Use:   "pick",
	Short: "Pick a date interactively (default command)",
	Long: `Opens the calendar picker. The picker UI is drawn on stderr so that the
chosen date can be captured from stdout, e.g. DUE=$(dp pick).`,
	Args: cobra.NoArgs,
	RunE: runPick,
}

func init() {
	addPickFlags(pickCmd)
}

func addPickFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&pickValueFlag, "value", "", "Initial date text (overrides initial_value in config)")
	cmd.Flags().BoolVar(&pickFormFlag, "form", false, "Use a plain form field instead of the calendar")
}

func runPick(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("using default config", "error", err)
		cfg = config.Default()
	}

	value := pickValueFlag
	if value == "" {
		value = cfg.InitialValue
	}

	var picked string
	if pickFormFlag {
		picked, err = runForm(value)
	} else {
		picked, err = runTUI(cmd, cfg, value)
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), picked)
	return nil
}

// runTUI runs the calendar picker with logging redirected to a file.
func runTUI(cmd *cobra.Command, cfg *config.Config, value string) (string, error) {
	if logDir, err := config.LogDir(); err == nil {
		if err := logger.InitializeWithConfig(logger.Config{
			Level:   logger.GetLevel().String(),
			Format:  logger.GetFormat(),
			File:    filepath.Join(logDir, "datepicker.log"),
			TUIMode: true,
		}); err != nil {
			return "", fmt.Errorf("failed to initialize logging: %w", err)
		}
	}

	var watcher *sync.Watcher
	if path, err := config.ConfigPath(); err == nil {
		watcher, err = sync.NewWatcher(path)
		if err != nil {
			logger.Warn("config reload disabled", "error", err)
			watcher = nil
		}
	}

	model, err := tui.NewModel(tui.Options{
		Value:   value,
		Config:  cfg,
		Watcher: watcher,
	})
	if err != nil {
		return "", err
	}

	p := tea.NewProgram(model, tea.WithOutput(cmd.ErrOrStderr()))
	if _, err := p.Run(); err != nil {
		return "", fmt.Errorf("picker failed: %w", err)
	}

	picked, ok := model.Value()
	if !ok {
		return "", ErrCancelled
	}
	return picked, nil
}

// runForm asks for the date in a single validated form field.
func runForm(value string) (string, error) {
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Date").
				Placeholder("MM/DD/YYYY").
				Value(&value).
				Validate(caldate.Validate),
		),
	)

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return "", ErrCancelled
		}
		return "", fmt.Errorf("form cancelled: %w", err)
	}

	return value, nil
}
