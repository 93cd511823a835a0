// Package corpus reads a directory of text files into a domain.Corpus.
package corpus

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Laisky/errors/v2"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"questions/internal/domain"
)

const utf8BOM = "\ufeff"

// Options controls which files are loaded.
type Options struct {
	// Extensions lists accepted file extensions, dot included.
	Extensions []string
	// Concurrency bounds the number of files read at once.
	Concurrency int
}

// Loader reads corpus directories.
type Loader struct {
	opts   Options
	logger *logrus.Entry
}

// NewLoader creates a loader. Zero options fall back to `.txt` files and
// four concurrent reads.
func NewLoader(opts Options, logger *logrus.Entry) *Loader {
	if len(opts.Extensions) == 0 {
		opts.Extensions = []string{".txt"}
	}
	if opts.Concurrency <= 0 {
		opts.Concurrency = 4
	}
	return &Loader{opts: opts, logger: logger}
}

// Load reads every accepted file directly inside dir. Documents are named
// by file name and added in sorted order.
func (l *Loader) Load(ctx context.Context, dir string) (*domain.Corpus, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "read corpus dir `%s`", dir)
	}

	var names []string
	for _, e := range entries {
		if !e.Type().IsRegular() || !l.accepts(e.Name()) {
			continue
		}
		names = append(names, e.Name())
	}
	sort.Strings(names)
	if len(names) == 0 {
		return nil, errors.Wrapf(domain.ErrEmptyCorpus, "dir `%s`", dir)
	}

	texts := make([]string, len(names))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(l.opts.Concurrency)
	for i, name := range names {
		i, name := i, name
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			text, err := readDocument(filepath.Join(dir, name))
			if err != nil {
				return err
			}
			texts[i] = text
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	c := domain.NewCorpus()
	for i, name := range names {
		c.Add(domain.Document{Name: name, Text: texts[i]})
	}
	if l.logger != nil {
		l.logger.WithFields(logrus.Fields{"dir": dir, "documents": c.Len()}).Debug("corpus loaded")
	}
	return c, nil
}

func (l *Loader) accepts(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, want := range l.opts.Extensions {
		if ext == strings.ToLower(want) {
			return true
		}
	}
	return false
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read `%s`", path)
	}
	text := strings.TrimPrefix(string(data), utf8BOM)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		text, err = htmlText(text)
		if err != nil {
			return "", errors.Wrapf(err, "extract text from `%s`", path)
		}
	}
	return text, nil
}
