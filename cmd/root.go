// Package cmd defines the CLI commands for the wot tool.
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/aviadshiber/wot/internal/config"
	"github.com/aviadshiber/wot/internal/iostreams"
	"github.com/aviadshiber/wot/internal/logging"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// versionInfo is set by main via SetVersionInfo.
	versionInfo = struct {
		version string
		commit  string
		date    string
	}{version: "dev", commit: "none", date: "unknown"}

	// Global flag values bound to viper.
	cfgApplicationID string
	cfgRegion        string
	cfgLanguage      string
	cfgMethod        string
	cfgHTTPS         bool
	cfgInsecure      bool
	cfgTimeout       time.Duration
	cfgQuiet         bool
	cfgDebug         bool
	cfgJSON          string
	cfgJQ            string
	cfgTemplate      string

	io     *iostreams.IOStreams
	logger = zerolog.Nop()
)

// SetVersionInfo stores build metadata for the version command.
func SetVersionInfo(version, commit, date string) {
	versionInfo.version = version
	versionInfo.commit = commit
	versionInfo.date = date
}

var rootCmd = &cobra.Command{
	Use:   "wot",
	Short: "World of Tanks API CLI - look up clans, players, vehicles and ratings",
	Long: `wot is a command-line tool for the Wargaming World of Tanks public API.

It searches clans and players, fetches their details, and browses the vehicle
encyclopedia and rating dictionaries. Output can be formatted as tables, CSV,
JSON, or filtered with jq expressions and Go templates.

Configuration is stored in ~/.config/wot/config.yaml and can be overridden
with flags, environment variables (WOT_APPLICATION_ID, WOT_REGION, ...) or a
.env file in the working directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s := getIO()
		s.SetQuiet(viper.GetBool("quiet"))

		debug := viper.GetBool("debug") || os.Getenv("WOT_DEBUG") == "1"
		logger = logging.New(s.ErrOut, debug, os.Getenv("WOT_LOG_FORMAT"), s.IsStderrTerminal())

		if viper.GetBool("insecure") && !viper.GetBool(config.KeyHTTPS) && !s.IsQuiet() {
			s.Errorf("%s\n", s.Warning("--insecure has no effect without --https"))
		}

		if region := viper.GetString(config.KeyRegion); region != "" {
			if _, err := config.Validate(config.KeyRegion, region); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	// .env first so its values are visible to AutomaticEnv.
	_ = godotenv.Load()

	home, _ := os.UserHomeDir()
	if home != "" {
		viper.SetConfigFile(home + "/.config/wot/config.yaml")
		viper.SetConfigType("yaml")
		_ = viper.ReadInConfig() // Ignore error if file doesn't exist yet.
	}

	viper.SetEnvPrefix("WOT")
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	viper.SetDefault(config.KeyRegion, config.DefaultRegion)
	viper.SetDefault(config.KeyLanguage, config.DefaultLanguage)
	viper.SetDefault(config.KeyMethod, config.DefaultMethod)

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgApplicationID, "application-id", "", "Wargaming application ID (env: WOT_APPLICATION_ID)")
	pf.StringVarP(&cfgRegion, "region", "r", "", "API region: na, ru, eu, sea/asia (env: WOT_REGION)")
	pf.StringVarP(&cfgLanguage, "language", "l", "", "Response language (env: WOT_LANGUAGE)")
	pf.StringVar(&cfgMethod, "method", "", "HTTP method: GET or POST (env: WOT_METHOD)")
	pf.BoolVar(&cfgHTTPS, "https", false, "Use https (env: WOT_HTTPS)")
	pf.BoolVar(&cfgInsecure, "insecure", false, "Skip TLS certificate verification (with --https)")
	pf.DurationVar(&cfgTimeout, "timeout", 0, "Request timeout, e.g. 10s (0 = none)")
	pf.BoolVarP(&cfgQuiet, "quiet", "q", false, "Suppress non-essential output (env: WOT_QUIET)")
	pf.BoolVar(&cfgDebug, "debug", false, "Log requests to stderr (env: WOT_DEBUG=1)")
	pf.StringVar(&cfgJSON, "json", "", "Output JSON; optionally a comma-separated list of response fields")
	pf.StringVar(&cfgJQ, "jq", "", "Filter JSON output with a jq expression (requires --json)")
	pf.StringVar(&cfgTemplate, "template", "", "Format output with a Go template (requires --json)")

	// Allow --json to be used without a value (e.g., "wot version --json").
	pf.Lookup("json").NoOptDefVal = " "

	_ = viper.BindPFlag(config.KeyApplicationID, pf.Lookup("application-id"))
	_ = viper.BindPFlag(config.KeyRegion, pf.Lookup("region"))
	_ = viper.BindPFlag(config.KeyLanguage, pf.Lookup("language"))
	_ = viper.BindPFlag(config.KeyMethod, pf.Lookup("method"))
	_ = viper.BindPFlag(config.KeyHTTPS, pf.Lookup("https"))
	_ = viper.BindPFlag("insecure", pf.Lookup("insecure"))
	_ = viper.BindPFlag("timeout", pf.Lookup("timeout"))
	_ = viper.BindPFlag("quiet", pf.Lookup("quiet"))
	_ = viper.BindPFlag("debug", pf.Lookup("debug"))

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newClansCmd())
	rootCmd.AddCommand(newAccountsCmd())
	rootCmd.AddCommand(newEncyclopediaCmd())
	rootCmd.AddCommand(newRatingsCmd())
}

// Execute runs the root command. Called from main.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		s := getIO()
		fmt.Fprintln(s.ErrOut, s.Failure("Error: "+err.Error()))
		return err
	}
	return nil
}

// getIO returns the current IOStreams instance, initializing if needed.
func getIO() *iostreams.IOStreams {
	if io == nil {
		io = iostreams.New()
	}
	return io
}

// jsonOutputRequested reports whether the --json flag was explicitly set.
func jsonOutputRequested(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("json")
}
