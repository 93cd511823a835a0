package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Laisky/errors/v2"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"questions/internal/config"
	"questions/internal/corpus"
	"questions/internal/logging"
	"questions/internal/nlp"
	"questions/internal/service"
	"questions/internal/tokenizer"
	"questions/internal/tui"
)

// overviewDocuments is how many documents the TUI header names.
const overviewDocuments = 3

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "questions <corpus-dir>",
		Short: "Answer questions from a directory of text files",
		Long: `Rank the documents of a corpus directory against a question using TF-IDF,
then print the most relevant sentence(s) of the best document(s).

Without --query or --plain an interactive terminal UI is started.

Example:
  questions ./corpus -q "When was Python 3.0 released?"`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          run,
	}

	f := cmd.Flags()
	f.StringP("config", "c", "", "config file path (default ./questions.yaml or ~/.config/questions/config.yaml)")
	f.Int("files", 0, "number of documents to draw sentences from")
	f.Int("sentences", 0, "number of sentences to print")
	f.String("language", "", "corpus language, like `en`")
	f.String("log-level", "", "`debug/info/warn/error`")
	f.StringP("query", "q", "", "answer a single query and exit")
	f.Bool("plain", false, "prompt for one query on stdin instead of starting the UI")
	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logger, err := logging.New(cfg.Log.Level, cfg.Log.Format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	toolkit, err := nlp.New(cfg.NLP.Language)
	if err != nil {
		return errors.Wrap(err, "init nlp")
	}
	tok := tokenizer.New(toolkit)

	loader := corpus.NewLoader(corpus.Options{
		Extensions:  cfg.Corpus.Extensions,
		Concurrency: cfg.Corpus.Concurrency,
	}, logger)
	docs, err := loader.Load(cmd.Context(), args[0])
	if err != nil {
		return errors.Wrap(err, "load corpus")
	}

	svc := service.NewQAService(tok, toolkit, service.Options{
		FileMatches:     cfg.Ranking.FileMatches,
		SentenceMatches: cfg.Ranking.SentenceMatches,
	}, logger)
	if err := svc.Ingest(docs); err != nil {
		return err
	}

	f := cmd.Flags()
	query, _ := f.GetString("query")
	plain, _ := f.GetBool("plain")
	switch {
	case query != "":
		return answer(cmd.OutOrStdout(), svc, query)
	case plain:
		fmt.Fprint(cmd.OutOrStdout(), "Query: ")
		line, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return errors.Wrap(err, "read query")
		}
		return answer(cmd.OutOrStdout(), svc, strings.TrimSpace(line))
	default:
		return runTUI(svc, logger)
	}
}

func answer(out io.Writer, svc *service.QAServiceImpl, query string) error {
	ans, err := svc.Answer(query)
	if err != nil {
		return err
	}
	for _, s := range ans.Sentences {
		fmt.Fprintln(out, s)
	}
	return nil
}

func runTUI(svc *service.QAServiceImpl, logger *logrus.Entry) error {
	// keep log lines from tearing the UI
	logger.Logger.SetLevel(logrus.ErrorLevel)

	m := tui.New(svc, svc.Overview(overviewDocuments))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return errors.Wrap(err, "run tui")
	}
	return nil
}

// loadConfig reads the config file, then lets explicitly set flags win.
func loadConfig(cmd *cobra.Command) (*config.AppConfig, error) {
	f := cmd.Flags()
	path, _ := f.GetString("config")

	var (
		cfg *config.AppConfig
		err error
	)
	if path == "" {
		cfg, _, err = config.LoadDefault()
	} else {
		cfg, err = config.Load(path)
	}
	if err != nil {
		return nil, errors.Wrap(err, "load config")
	}

	if f.Changed("files") {
		cfg.Ranking.FileMatches, _ = f.GetInt("files")
	}
	if f.Changed("sentences") {
		cfg.Ranking.SentenceMatches, _ = f.GetInt("sentences")
	}
	if f.Changed("language") {
		cfg.NLP.Language, _ = f.GetString("language")
	}
	if f.Changed("log-level") {
		cfg.Log.Level, _ = f.GetString("log-level")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}
