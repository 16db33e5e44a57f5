// Package main provides the CLI entrypoint for vocabtype.
package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/vocabtype/internal/config"
	"github.com/verte-zerg/vocabtype/internal/generator"
	"github.com/verte-zerg/vocabtype/internal/model"
	"github.com/verte-zerg/vocabtype/internal/session"
	"github.com/verte-zerg/vocabtype/internal/tui"
	"github.com/verte-zerg/vocabtype/internal/typing"
	"github.com/verte-zerg/vocabtype/internal/vocab"
)

const (
	defaultTopic    = 0
	defaultSeed     = 0
	defaultWidthPct = 0.70
)

var (
	practiceTopic    int
	practiceSeed     int64
	practiceWidthPct float64
	practiceDebug    bool

	wordsTopic int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "vocabtype",
		Short:         "TOEIC vocabulary typing trainer",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE:          runPracticeCmd,
	}

	rootCmd.Flags().IntVar(&practiceTopic, "topic", defaultTopic, "start practicing this topic id (0 shows the topic list)")
	rootCmd.Flags().Int64Var(&practiceSeed, "seed", defaultSeed, "shuffle seed (0 uses the current time)")
	rootCmd.Flags().Float64Var(&practiceWidthPct, "width", defaultWidthPct, "share of terminal width used for words (0-1)")
	rootCmd.Flags().BoolVar(&practiceDebug, "debug", false, "write a debug log to "+config.DefaultLogPath())

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newTopicsCmd())
	rootCmd.AddCommand(newWordsCmd())

	return rootCmd
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	applyIntConfig(cmd, "topic", &practiceTopic, fileCfg.Practice.Topic)
	applyInt64Config(cmd, "seed", &practiceSeed, fileCfg.Practice.Seed)
	applyFloatConfig(cmd, "width", &practiceWidthPct, fileCfg.Display.WidthPct)

	cfg := model.Config{
		Topic:    practiceTopic,
		Seed:     practiceSeed,
		WidthPct: practiceWidthPct,
		Debug:    practiceDebug,
		LogPath:  config.DefaultLogPath(),
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	topics := vocab.Topics()
	if err := vocab.Validate(topics); err != nil {
		return fmt.Errorf("invalid vocabulary data: %w", err)
	}

	var startTopic *model.VocabularyTopic
	if cfg.Topic != 0 {
		topic, ok := vocab.Lookup(cfg.Topic)
		if !ok {
			return unknownTopicError(cfg.Topic)
		}
		startTopic = &topic
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("vocabtype needs an interactive terminal; use `vocabtype topics` or `vocabtype words` for plain output")
	}

	var logger *log.Logger
	if cfg.Debug {
		logFile, err := openDebugLog(cfg.LogPath)
		if err != nil {
			return err
		}
		defer func() {
			if cerr := logFile.Close(); cerr != nil {
				logErrf("failed to close debug log: %v\n", cerr)
			}
		}()
		logger = log.Default()
		logger.Printf("starting: topic=%d seed=%d width=%.2f", cfg.Topic, cfg.Seed, cfg.WidthPct)
	}

	ctrl := session.New(typing.NewEngine(generator.New(cfg.Seed)))
	if startTopic != nil {
		if err := ctrl.SelectTopic(*startTopic); err != nil {
			return fmt.Errorf("failed to start topic: %w", err)
		}
	}

	m := tui.NewModel(cfg, ctrl, topics, logger)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func openDebugLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := tea.LogToFile(path, "vocabtype")
	if err != nil {
		return nil, fmt.Errorf("failed to open debug log: %w", err)
	}
	return f, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func newTopicsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "topics",
		Short: "List vocabulary topics",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := vocab.RenderTopics(cmd.OutOrStdout(), vocab.Topics()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "words",
		Short: "Show the words of a topic",
		Args:  cobra.NoArgs,
		RunE:  runWordsCmd,
	}
	cmd.Flags().IntVar(&wordsTopic, "topic", 0, "topic id (see `vocabtype topics`)")
	return cmd
}

func runWordsCmd(cmd *cobra.Command, _ []string) error {
	if wordsTopic == 0 {
		return fmt.Errorf("--topic is required")
	}
	topic, ok := vocab.Lookup(wordsTopic)
	if !ok {
		return unknownTopicError(wordsTopic)
	}
	if err := vocab.RenderWords(cmd.OutOrStdout(), topic); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyInt64Config(cmd *cobra.Command, name string, target, value *int64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# vocabtype configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# topic = %d              # Topic id to start with (0 shows the topic list)
# seed = %d               # Shuffle seed (0 uses the current time)

[display]
# width = %.2f          # Share of terminal width used for words (0-1)
`,
		defaultTopic,
		defaultSeed,
		defaultWidthPct,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.Topic < 0 {
		return fmt.Errorf("--topic must be >= 0")
	}
	if cfg.WidthPct <= 0 || cfg.WidthPct > 1 {
		return fmt.Errorf("--width must be greater than 0 and at most 1")
	}
	return nil
}

func unknownTopicError(id int) error {
	lines := []string{
		fmt.Sprintf("unknown topic %d", id),
		"Run: vocabtype topics",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
