package cmd

import (
	"fmt"

	"anchovy/internal/catalog"
	"anchovy/internal/config"
	"anchovy/internal/tui/controller"
	"anchovy/internal/tui/design"
	"anchovy/internal/tui/model"
	"anchovy/pkg/logging"

	"github.com/spf13/cobra"
)

var (
	browsePage  string
	browseTheme string
	browseDebug bool
)

func addBrowseFlags(c *cobra.Command) {
	c.Flags().StringVarP(&browsePage, "page", "p", "", "Page to open: a route such as /spectrum, a page name or its number")
	c.Flags().StringVar(&browseTheme, "theme", "", "Color scheme: auto, light or dark")
	c.Flags().BoolVar(&browseDebug, "debug", false, "Show debug entries in the activity log")
}

func newBrowseCmd() *cobra.Command {
	c := &cobra.Command{
		Use:   "browse",
		Short: "Open the interactive design system browser",
		Long: `Opens the terminal browser. Pages are switched with 1-7 or tab, the
focused value is copied with c (or y for the alternate form) and ? lists every
key. Press L for the activity log and q to quit.`,
		Args: cobra.NoArgs,
		RunE: runBrowse,
	}
	addBrowseFlags(c)
	return c
}

func runBrowse(cmd *cobra.Command, args []string) error {
	opts, err := browseOptions(appConfig, browsePage, browseTheme, browseDebug)
	if err != nil {
		return err
	}
	if err := catalog.Validate(); err != nil {
		return fmt.Errorf("reference tables are inconsistent: %w", err)
	}

	level, err := logging.ParseLevel(opts.Config.Log.Level)
	if err != nil {
		return err
	}
	if browseDebug {
		level = logging.LevelDebug
	}
	opts.LogChannel = logging.InitForTUI(level)
	defer logging.CloseTUIChannel()

	p, err := controller.NewProgram(opts)
	if err != nil {
		return fmt.Errorf("failed to initialize browser: %w", err)
	}
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("browser exited with error: %w", err)
	}
	return nil
}

// browseOptions resolves the flags against the config into model options.
func browseOptions(cfg config.AnchovyConfig, page, theme string, debug bool) (model.Options, error) {
	if theme != "" {
		cfg.Theme = config.Theme(theme)
	}
	if err := cfg.Validate(); err != nil {
		return model.Options{}, err
	}
	if page == "" {
		page = cfg.StartPage
	}
	start, err := model.ParseRoute(page)
	if err != nil {
		return model.Options{}, err
	}
	return model.Options{
		Config:    cfg,
		StartPage: start,
		IsDark:    resolveDark(cfg.Theme, design.DetectDarkBackground),
		DebugMode: debug,
	}, nil
}

// resolveDark turns the theme setting into the initial dark flag. detect is
// only consulted for ThemeAuto.
func resolveDark(theme config.Theme, detect func() bool) bool {
	switch theme {
	case config.ThemeDark:
		return true
	case config.ThemeLight:
		return false
	default:
		return detect()
	}
}
