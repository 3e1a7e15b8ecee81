package cli

import (
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// setupLogging points the global logger at w, human readable when w is a
// terminal, and tags every line with a fresh run id.
func setupLogging(level string, w io.Writer) (string, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return "", err
	}
	zerolog.SetGlobalLevel(lvl)

	out := w
	if f, ok := w.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}
	runID := uuid.NewString()
	log.Logger = zerolog.New(out).With().Timestamp().Str("run", runID).Logger()
	return runID, nil
}
