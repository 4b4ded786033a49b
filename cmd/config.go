package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	cfgpkg "github.com/metascope/metascope-cli/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or set metascope configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show effective configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg == nil {
			fmt.Println("No config loaded")
			return nil
		}
		fmt.Printf("data_path: %s\n", cfg.DataPath)
		fmt.Printf("sample_path: %s\n", cfg.SamplePath)
		fmt.Printf("out_dir: %s\n", cfg.OutDir)
		fmt.Printf("top_n: %d\n", cfg.TopJournals)
		fmt.Printf("top_sources_n: %d\n", cfg.TopSources)
		fmt.Printf("top_words: %d\n", cfg.TopWords)
		fmt.Printf("min_token_len: %d\n", cfg.MinTokenLen)
		if len(cfg.ExtraStopwords) > 0 {
			fmt.Printf("extra_stopwords: %s\n", strings.Join(cfg.ExtraStopwords, ", "))
		}
		fmt.Printf("serve_addr: %s\n", cfg.ServeAddr)
		if cfg.LogLevel != "" {
			fmt.Printf("log_level: %s\n", cfg.LogLevel)
		}
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a config value and save to disk",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, val := args[0], args[1]
		if cfg == nil {
			c, err := cfgpkg.Load(cfgFile)
			if err != nil {
				return err
			}
			cfg = c
		}
		switch key {
		case "data_path":
			cfg.DataPath = val
		case "sample_path":
			cfg.SamplePath = val
		case "out_dir":
			cfg.OutDir = val
		case "serve_addr":
			cfg.ServeAddr = val
		case "log_level":
			cfg.LogLevel = val
		case "extra_stopwords":
			words := strings.Split(val, ",")
			for i := range words {
				words[i] = strings.TrimSpace(words[i])
			}
			cfg.ExtraStopwords = words
		case "top_n", "top_sources_n", "top_words", "min_token_len":
			n, err := strconv.Atoi(val)
			if err != nil || n <= 0 {
				return fmt.Errorf("invalid %s: %s (positive integer required)", key, val)
			}
			switch key {
			case "top_n":
				cfg.TopJournals = n
			case "top_sources_n":
				cfg.TopSources = n
			case "top_words":
				cfg.TopWords = n
			case "min_token_len":
				cfg.MinTokenLen = n
			}
		default:
			return fmt.Errorf("unknown config key: %s", key)
		}
		if err := cfgpkg.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Printf("✓ Saved %s\n", key)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}
