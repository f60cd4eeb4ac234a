package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/FranksOps/prospect/internal/config"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "prospect",
	Short: "AI-assisted B2B lead generation",
	Long: `prospect discovers candidate businesses for an industry and location,
scrapes their websites for contact and firmographic signals, scores them
with a hybrid rule/LLM formula, and generates outreach copy.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the CLI.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default prospect.yaml in cwd)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	rootCmd.AddCommand(newGenerateCmd())
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("prospect")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	viper.SetEnvPrefix("PROSPECT")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// Credentials follow the services' conventional variable names.
	_ = viper.BindEnv("serpapi_key", "SERPAPI_KEY")
	_ = viper.BindEnv("groq_api_key", "GROQ_API_KEY")
	_ = viper.BindEnv("hunter_api_key", "HUNTER_API_KEY")

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintln(os.Stderr, "using config file:", viper.ConfigFileUsed())
	}
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func loadRunConfig() (config.Run, error) {
	var cfg config.Run
	if err := viper.Unmarshal(&cfg); err != nil {
		return config.Run{}, fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg.Defaults()
	if err := cfg.Validate(); err != nil {
		return config.Run{}, err
	}
	return cfg, nil
}
