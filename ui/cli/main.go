// Copyright (c) 2026 Achei Team
// Achei - personal belongings registry and theft reporting client
// This source code is licensed under the MIT license found in the LICENSE file.

// main.go sets up the command-line interface for the Achei client using the
// Cobra library. It defines the root command, the shared service wiring
// (config, i18n, API client, local cache) and the main entry point for
// execution. Running without a subcommand launches the interactive portal.

package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"
	"strings"
	"time"

	log "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/acheiapp/achei/buildvars"
	"github.com/acheiapp/achei/internal/api"
	"github.com/acheiapp/achei/internal/cep"
	"github.com/acheiapp/achei/internal/config"
	"github.com/acheiapp/achei/internal/i18n"
	"github.com/acheiapp/achei/internal/logging"
	"github.com/acheiapp/achei/internal/session"
	"github.com/acheiapp/achei/internal/store"
	"github.com/acheiapp/achei/internal/tui"
)

var version = buildvars.VersionOrDefault("dev")
var gitCommit = "dev" // set at build time with the short commit SHA
var buildDate = ""    // set at build time (RFC3339)
var cfgFile string
var verbose bool
var showVersionFlag bool

var appConfig config.Config

// Shared services, wired by setupDefaultServices.
var (
	sessions  *session.Manager
	apiClient *api.Client
	cepClient *cep.Client
)

func setupDefaultServices(cmd *cobra.Command, args []string) error {
	optionalConfigPath, err := getConfigPathFromCli(cmd)
	if err != nil {
		return err
	}

	defaults := map[string]any{
		"api.base_url":  "https://api.achei.app.br/v1",
		"cep.base_url":  "https://viacep.com.br",
		"http.timeout":  15,
		"database.type": "sqlite",
		"database.dsn":  "./achei.db",
		"language":      "pt-BR",
	}

	appConfig, err = config.LoadConfig[config.Config](cmd, defaults, optionalConfigPath)
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	// No config file on disk means this is the first run (or the file was
	// deleted). Write a default one so subsequent runs have a persisted
	// file to inspect; failing to write it is not fatal.
	if config.FileUsed() == "" {
		if writeErr := config.WriteConfigFile(&appConfig, false); writeErr != nil {
			log.Warnf("could not write default config file: %v", writeErr)
		}
	}

	// Empty values in a hand-edited config fall back to defaults.
	if appConfig.API.BaseURL == "" {
		appConfig.API.BaseURL = defaults["api.base_url"].(string)
	}
	if appConfig.CEP.BaseURL == "" {
		appConfig.CEP.BaseURL = defaults["cep.base_url"].(string)
	}
	if appConfig.Database.Type == "" {
		appConfig.Database.Type = defaults["database.type"].(string)
	}
	if appConfig.Database.Dsn == "" {
		appConfig.Database.Dsn = defaults["database.dsn"].(string)
	}
	if appConfig.Language == "" {
		appConfig.Language = defaults["language"].(string)
	}

	i18n.Init(appConfig.Language)
	logging.SetDebug(verbose)

	sessionStore, err := session.NewStore()
	if err != nil {
		return fmt.Errorf("could not locate the session file: %w", err)
	}
	sessions = session.NewManager(sessionStore)

	timeout := time.Duration(appConfig.HTTP.TimeoutSeconds) * time.Second
	apiClient = api.New(api.Config{BaseURL: appConfig.API.BaseURL, Timeout: timeout}, sessions)
	cepClient = cep.New(cep.Config{BaseURL: appConfig.CEP.BaseURL, Timeout: timeout})

	// The local cache is best effort. A broken database file must not take
	// the whole client down; features degrade to online-only.
	if !store.IsInitialized() {
		if err := store.InitDB(appConfig.Database.Type, appConfig.Database.Dsn); err != nil {
			log.Warnf("local cache unavailable: %v", err)
		}
	}

	return nil
}

// Execute runs the CLI entrypoint. The main package should call this
// function and handle process exit.
func Execute() error {
	rootCmd := NewRootCmd()
	return rootCmd.Execute()
}

func getConfigPathFromCli(cmd *cobra.Command) (*string, error) {
	// Only honor the flag when the user explicitly set it.
	if cmd.Flags().Changed("config") {
		path, err := cmd.Flags().GetString("config")
		if err != nil {
			return nil, fmt.Errorf("could not read --config flag: %w", err)
		}
		if path == "" {
			return nil, nil
		}
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file specified via --config flag not found or is not accessible: %w", err)
		}
		return &path, nil
	}
	return nil, nil
}

// NewRootCmd creates and configures a new root cobra command. This function
// is used to create the main application command as well as fresh instances
// for isolated testing.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "achei",
		Short: "Achei keeps track of your belongings and theft reports.",
		Long: `Achei is the terminal client for the Achei service: register your
belongings, report thefts, follow case protocols and check the incident
map of your neighborhood. Police officers use the same client to work
the district case queue.

Running without a subcommand launches the interactive portal.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if showVersionFlag {
				fmt.Println(compositeVersion())
				os.Exit(0)
			}
			return setupDefaultServices(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return tui.Run(tuiDeps())
		},
	}

	cmd.Version = compositeVersion()

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().BoolVarP(&showVersionFlag, "version", "V", false, "Print version and exit")
	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file")
	cmd.PersistentFlags().String("language", "pt-BR", `Interface language ("pt-BR", "en")`)

	cmd.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newWhoamiCmd(),
		newRegisterCmd(),
		newObjectsCmd(),
		newCasesCmd(),
		newMapCmd(),
		newDashboardCmd(),
		newNotificationsCmd(),
		newCEPCmd(),
		newVersionCmd(),
	)

	return cmd
}

// tuiDeps bundles the wired services for the interactive portal.
func tuiDeps() tui.Deps {
	deps := tui.Deps{
		Sessions: sessions,
		API:      apiClient,
		CEP:      cepClient,
		SaveConfig: func() error {
			appConfig.Language = i18n.GetLang()
			return config.WriteConfigFile(&appConfig, false)
		},
	}
	if store.IsInitialized() {
		deps.Cache = store.Get()
	}
	return deps
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version",
		Run: func(cmd *cobra.Command, args []string) {
			v, c, d := resolveBuildVersion(nil)
			fmt.Printf("version: %s\n", v)
			fmt.Printf("commit: %s\n", c)
			if d != "" {
				fmt.Printf("built: %s\n", d)
			}
		},
	}
}

func compositeVersion() string {
	v, c, d := resolveBuildVersion(nil)
	out := v
	if c != "" && c != "dev" {
		out += " (" + c + ")"
	}
	if d != "" {
		out += " built: " + d
	}
	return out
}

// resolveBuildVersion computes the best-available version, commit and build
// date for the running binary. If info is nil, it reads build info from the
// runtime. Separated to make unit testing straightforward.
func resolveBuildVersion(info *debug.BuildInfo) (versionOut, commitOut, dateOut string) {
	resolvedVersion := version
	resolvedCommit := gitCommit
	resolvedDate := buildDate

	if info == nil {
		info, _ = debug.ReadBuildInfo()
	}
	if info != nil {
		if info.Main.Version != "" && info.Main.Version != "(devel)" {
			resolvedVersion = info.Main.Version
		}
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs.revision":
				if s.Value != "" {
					resolvedCommit = shortCommit(s.Value)
				}
			case "vcs.time":
				if s.Value != "" {
					resolvedDate = s.Value
				}
			}
		}
	}
	return resolvedVersion, resolvedCommit, resolvedDate
}

func shortCommit(rev string) string {
	if len(rev) > 12 {
		return rev[:12]
	}
	return rev
}

// requireSession resolves the persisted session and fails with a hint when
// the user is anonymous. CLI commands call this instead of rendering a
// login screen.
func requireSession() error {
	sessions.Resolve()
	if sessions.Current() == nil {
		return errors.New(i18n.T("session.none"))
	}
	return nil
}

func trimmed(s string) string { return strings.TrimSpace(s) }
