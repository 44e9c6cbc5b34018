// Package main provides the CLI entrypoint for tuidle.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuidle/internal/config"
	"github.com/verte-zerg/tuidle/internal/corpus"
	"github.com/verte-zerg/tuidle/internal/game"
	"github.com/verte-zerg/tuidle/internal/lineplay"
	"github.com/verte-zerg/tuidle/internal/logging"
	"github.com/verte-zerg/tuidle/internal/model"
	"github.com/verte-zerg/tuidle/internal/stats"
	"github.com/verte-zerg/tuidle/internal/statsui"
	"github.com/verte-zerg/tuidle/internal/store"
	"github.com/verte-zerg/tuidle/internal/tui"
	"github.com/verte-zerg/tuidle/internal/wordfreq"
)

const (
	shareLabel         = "Tuidle"
	defaultLogLevel    = "info"
	defaultRecord      = true
	defaultDictSize    = 12000
	defaultDictType    = wordfreq.ListLarge
	envFile            = ".env"
	dictionaryAttrName = "ATTRIBUTION.txt"
)

var (
	playWordList   string
	playDictionary string
	playRecord     bool

	statsMode  string
	statsSince string
	statsLast  int
	statsPlain bool

	dictSize  int
	dictForce bool

	fileCfg config.FileConfig
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "tuidle [wordle|random-word]",
		Short:             "Wordle in your terminal",
		Args:              cobra.MaximumNArgs(1),
		ValidArgs:         []string{game.ModeWordle.String(), game.ModeRandomWord.String()},
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
		RunE:              runPlayCmd,
	}

	rootCmd.Flags().StringVar(&playWordList, "word-list", "", "solutions word list file (default: embedded)")
	rootCmd.Flags().StringVar(&playDictionary, "dictionary", "", "extra accepted guesses file (default: generated or embedded)")
	rootCmd.Flags().BoolVar(&playRecord, "record", defaultRecord, "store finished games for stats")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newDictionaryCmd())

	return rootCmd
}

// setup loads .env and the config file and installs console logging. The
// config command skips the file so a broken config can still be edited.
func setup(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnv(envFile); err != nil {
		return err
	}
	if cmd.Name() != "config" {
		cfg, err := config.LoadConfig(config.DefaultConfigPath())
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		fileCfg = cfg
	}
	if err := logging.Console(fileCfg.LogLevel(defaultLogLevel)); err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}
	return nil
}

func runPlayCmd(cmd *cobra.Command, args []string) error {
	modeName := ""
	if fileCfg.Game.Mode != nil {
		modeName = *fileCfg.Game.Mode
	}
	if len(args) == 1 {
		modeName = args[0]
	}
	applyStringConfig(cmd, "word-list", &playWordList, fileCfg.Game.WordList)
	applyStringConfig(cmd, "dictionary", &playDictionary, fileCfg.Game.Dictionary)
	applyBoolConfig(cmd, "record", &playRecord, fileCfg.Game.Record)

	mode, err := game.ParseMode(modeName)
	if err != nil {
		return err
	}
	cfg := model.Config{
		Mode:           mode.String(),
		WordListPath:   playWordList,
		DictionaryPath: resolveDictionaryPath(playDictionary, config.DefaultDictionaryPath()),
		Record:         playRecord,
	}

	c, err := corpus.Load(cfg.WordListPath, cfg.DictionaryPath)
	if err != nil {
		return err
	}
	log.Debug().
		Int("solutions", c.Solutions()).
		Int("extras", c.Extras()).
		Str("dictionary", cfg.DictionaryPath).
		Msg("corpus loaded")

	ctx := context.Background()
	startedAt := time.Now()
	puzzle := model.NoPuzzle
	if mode == game.ModeWordle {
		puzzle = corpus.DayIndex(startedAt)
	}
	session := game.NewSession(c, mode)

	var (
		st      *store.Store
		history []model.GameAggregate
	)
	if cfg.Record {
		st, err = store.Open(config.DefaultDBPath())
		if err != nil {
			return fmt.Errorf("failed to open db: %w", err)
		}
		defer func() {
			if cerr := st.Close(); cerr != nil {
				log.Error().Err(cerr).Msg("failed to close db")
			}
		}()
		history = loadHistory(ctx, st, puzzle)
	}

	recorder := func(rec model.GameRecord) error {
		if st == nil {
			return nil
		}
		id, err := st.InsertGame(ctx, rec)
		if err != nil {
			return fmt.Errorf("failed to record game: %w", err)
		}
		log.Info().Str("id", id).Str("mode", rec.Mode).Bool("won", rec.Won).Msg("game recorded")
		return nil
	}

	if !isTerminal(os.Stdin) {
		if err := lineplay.Run(ctx, os.Stdin, os.Stdout, session); err != nil {
			return err
		}
		if session.IsOver() {
			if err := recorder(session.Record(puzzle, startedAt, time.Now())); err != nil {
				return err
			}
		}
		return printShare(os.Stdout, session, puzzle)
	}

	logFile, err := logging.File(config.DefaultLogPath(), fileCfg.LogLevel(defaultLogLevel))
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	m := tui.NewModel(session, tui.Options{Puzzle: puzzle, Recorder: recorder, History: history})
	program := tea.NewProgram(m, tea.WithAltScreen())
	_, runErr := program.Run()
	if cerr := logFile.Close(); cerr != nil {
		runErr = errors.Join(runErr, fmt.Errorf("failed to close log file: %w", cerr))
	}
	if err := logging.Console(fileCfg.LogLevel(defaultLogLevel)); err != nil {
		return errors.Join(runErr, err)
	}
	if runErr != nil {
		return fmt.Errorf("failed to run TUI: %w", runErr)
	}
	return printShare(os.Stdout, session, puzzle)
}

// loadHistory returns earlier games for the footer summary. Failures only
// cost the summary, so they are logged.
func loadHistory(ctx context.Context, st *store.Store, puzzle int) []model.GameAggregate {
	if puzzle != model.NoPuzzle {
		played, err := st.HasPlayedPuzzle(ctx, puzzle)
		if err != nil {
			log.Warn().Err(err).Msg("failed to check puzzle history")
		} else if played {
			log.Warn().Int("puzzle", puzzle).Msg("puzzle already played today; this game is recorded again")
		}
	}
	games, err := st.ListGames(ctx, model.StatsConfig{})
	if err != nil {
		log.Warn().Err(err).Msg("failed to load game history")
		return nil
	}
	return games
}

func printShare(w io.Writer, s *game.Session, puzzle int) error {
	if !s.IsOver() {
		return nil
	}
	history := s.History()
	_, err := fmt.Fprintf(w, "%s\n\n%s\n", game.ShareHeader(shareLabel, puzzle, history, s.IsWin()), game.ShareGrid(history))
	return err
}

// resolveDictionaryPath falls back to the generated dictionary when it exists.
// An empty result selects the embedded extras.
func resolveDictionaryPath(explicit, generated string) string {
	if explicit != "" {
		return explicit
	}
	if generated == "" {
		return ""
	}
	if _, err := os.Stat(generated); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			log.Warn().Err(err).Str("path", generated).Msg("ignoring generated dictionary")
		}
		return ""
	}
	return generated
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
	if err := writeConfigTemplate(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// writeConfigTemplate creates the config file unless it already exists.
func writeConfigTemplate(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("failed to stat config: %w", err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	log.Info().Str("path", path).Msg("created config file")
	return nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsMode, "mode", "", "mode filter (wordle or random-word)")
	cmd.Flags().StringVar(&statsSince, "since", "", "start date (YYYY-MM-DD)")
	cmd.Flags().IntVar(&statsLast, "last", 0, "limit to last N games")
	cmd.Flags().BoolVar(&statsPlain, "plain", false, "print a text report instead of the TUI")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	last := ""
	if statsLast != 0 {
		last = fmt.Sprintf("%d", statsLast)
	}
	cfg, err := statsui.ParseFilters(statsMode, statsSince, last)
	if err != nil {
		return err
	}

	st, err := store.Open(config.DefaultDBPath())
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			log.Error().Err(cerr).Msg("failed to close db")
		}
	}()

	if statsPlain || !isTerminal(os.Stdout) {
		report, err := stats.BuildReport(cmd.Context(), st, cfg)
		if err != nil {
			return fmt.Errorf("failed to load stats: %w", err)
		}
		return stats.RenderReport(cmd.OutOrStdout(), report, 0, false)
	}

	program := tea.NewProgram(statsui.NewModel(st, cfg), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run stats TUI: %w", err)
	}
	return nil
}

func newDictionaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dictionary",
		Short: "Generate a dictionary of accepted guesses from wordfreq",
		Args:  cobra.NoArgs,
		RunE:  runDictionaryCmd,
	}
	cmd.Flags().IntVar(&dictSize, "size", defaultDictSize, "number of words")
	cmd.Flags().BoolVar(&dictForce, "force", false, "overwrite an existing dictionary")
	return cmd
}

func runDictionaryCmd(cmd *cobra.Command, _ []string) error {
	if dictSize <= 0 {
		return fmt.Errorf("--size must be greater than 0")
	}
	outPath := config.DefaultDictionaryPath()
	if !dictForce {
		if _, err := os.Stat(outPath); err == nil {
			return fmt.Errorf("dictionary already exists: %s (use --force to overwrite)", outPath)
		} else if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat dictionary: %w", err)
		}
	}

	log.Info().Msg("fetching wordfreq metadata")
	wheel, err := wordfreq.DownloadLatestWheel(cmd.Context(), config.DefaultWordfreqCacheDir())
	if err != nil {
		return fmt.Errorf("failed to download wordfreq wheel: %w", err)
	}
	log.Info().Str("wheel", wheel.Filename).Bool("cached", wheel.Cached).Msg("using wordfreq wheel")

	words, err := wordfreq.ExtractFiveLetterWords(wheel.Path, defaultDictType, dictSize)
	if err != nil {
		return fmt.Errorf("failed to extract dictionary: %w", err)
	}
	if err := wordfreq.WriteDictionary(outPath, words); err != nil {
		return err
	}
	if err := wordfreq.WriteAttribution(filepath.Dir(outPath), wheel.Version); err != nil {
		return err
	}
	log.Info().
		Str("path", outPath).
		Int("words", len(words)).
		Str("attribution", dictionaryAttrName).
		Msg("dictionary written")
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# tuidle configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# mode = %q            # wordle (daily puzzle) or random-word
# word-list = ""            # Solutions file, one word per line (default: embedded)
# dictionary = ""           # Extra accepted guesses (default: %s if present)
# record = %t              # Store finished games for stats

[log]
# level = %q             # trace, debug, info, warn, error (env: %s)
`,
		game.ModeWordle.String(),
		config.DefaultDictionaryPath(),
		defaultRecord,
		defaultLogLevel,
		config.LogLevelEnv,
	)
}
