// Command tweetscore-seed inserts pending tweets for the reconciler to pick up.
// Tweets come from the arguments, or one per line on stdin when there are none
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"tweetscore/internal/modkit"
	"tweetscore/internal/modkit/module"
	"tweetscore/internal/platform/config"
	"tweetscore/internal/platform/logger"
	"tweetscore/internal/platform/store"
	"tweetscore/internal/services/pending/domain"
	"tweetscore/internal/services/schema"

	pendingmod "tweetscore/internal/services/pending/module"

	"github.com/google/uuid"
)

func main() {
	os.Exit(run())
}

func run() int {
	skipBlank := flag.Bool("skip-blank", true, "ignore empty lines on stdin")
	flag.Parse()

	root := config.New()
	l := logger.Named("seed")
	batch := uuid.NewString()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	tweets := flag.Args()
	if len(tweets) == 0 {
		var err error
		if tweets, err = readLines(os.Stdin, *skipBlank); err != nil {
			l.Error().Err(err).Msg("read stdin")
			return 1
		}
	}
	if len(tweets) == 0 {
		l.Info().Msg("nothing to seed")
		return 0
	}

	st, err := store.Open(ctx, store.FromEnv(root, "seed"), store.WithLogger(*logger.Get()))
	if err != nil {
		l.Error().Err(err).Msg("store.Open failed")
		return 1
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			l.Error().Err(err).Msg("failed to close store")
		}
	}()
	if err := schema.Ensure(ctx, st.SQL, st.Dialect); err != nil {
		l.Error().Err(err).Msg("schema bootstrap failed")
		return 1
	}

	pm := pendingmod.New(modkit.FromStore(st, root, nil))
	w := module.MustPortsOf[domain.WriterPort](pm)

	n, err := seed(ctx, w, tweets, os.Stdout)
	if err != nil {
		l.Error().Err(err).Str("batch", batch).Int("inserted", n).Int("total", len(tweets)).Msg("seed stopped")
		return 1
	}
	l.Info().Str("batch", batch).Int("inserted", n).Msg("seed finished")
	return 0
}

// seed inserts tweets in order and prints "<id>\t<tweet>" per row
func seed(ctx context.Context, w domain.WriterPort, tweets []string, out io.Writer) (int, error) {
	for i, t := range tweets {
		in, err := w.Create(ctx, t)
		if err != nil {
			return i, fmt.Errorf("tweet %d: %w", i+1, err)
		}
		fmt.Fprintf(out, "%d\t%s\n", in.ID, in.Tweet)
	}
	return len(tweets), nil
}

func readLines(r io.Reader, skipBlank bool) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if skipBlank && strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out, sc.Err()
}
