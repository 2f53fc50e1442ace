package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	githubToken    string
	githubUsername string
)

var rootCmd = &cobra.Command{
	Use:   "review-radar-cli",
	Short: "review-radar-cli lists the GitHub pull requests waiting for your review.",
	Long:  `A CLI for review-radar. It runs the same review queue query as the MCP tool and prints the result to the terminal.`,
}

func init() { //nolint:gochecknoinits // Cobra's init function for command registration
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&githubToken, "github-token", "t", "", "GitHub Token")
	rootCmd.PersistentFlags().StringVarP(&githubUsername, "github-username", "u", "", "GitHub username whose review queue is listed")

	for key, flag := range map[string]string{
		"GITHUB_TOKEN":    "github-token",
		"GITHUB_USERNAME": "github-username",
	} {
		if err := viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag)); err != nil {
			slog.Error("Error binding flag", "flag", flag, "error", err)
			os.Exit(1)
		}
	}
}

// initConfig reads in ENV variables if set.
func initConfig() {
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()
}
