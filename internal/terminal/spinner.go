package terminal

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/rocketscienceinc/tictactoe-arena/internal/entity"
	"github.com/rocketscienceinc/tictactoe-arena/internal/session"
)

const spinnerInterval = 120 * time.Millisecond

// Spinner - cosmetic "thinking" indicator shown while the bot computes. It
// overlays a computation that is already deterministic and joins before the
// chosen move is used, so it can never influence the result.
type Spinner struct {
	out     io.Writer
	done    chan struct{}
	stopped chan struct{}
}

func StartSpinner(out io.Writer) *Spinner {
	spinner := &Spinner{
		out:     out,
		done:    make(chan struct{}),
		stopped: make(chan struct{}),
	}
	go spinner.loop()

	return spinner
}

func (that *Spinner) loop() {
	defer close(that.stopped)

	frames := []string{"|", "/", "-", "\\"}

	ticker := time.NewTicker(spinnerInterval)
	defer ticker.Stop()

	for i := 0; ; i++ {
		select {
		case <-that.done:
			fmt.Fprint(that.out, "\r              \r")
			return
		case <-ticker.C:
			fmt.Fprintf(that.out, "\r%s thinking...", frames[i%len(frames)])
		}
	}
}

// Stop - clears the indicator and waits for the goroutine to exit.
func (that *Spinner) Stop() {
	close(that.done)
	<-that.stopped
}

// ThinkingSource - wraps a move source with a spinner for the duration of
// its computation.
type ThinkingSource struct {
	inner session.MoveSource
	out   io.Writer
}

func NewThinkingSource(inner session.MoveSource, out io.Writer) *ThinkingSource {
	return &ThinkingSource{
		inner: inner,
		out:   out,
	}
}

func (that *ThinkingSource) NextMove(ctx context.Context, board *entity.Board, self, opponent *entity.Player) (int, error) {
	spinner := StartSpinner(that.out)
	defer spinner.Stop()

	return that.inner.NextMove(ctx, board, self, opponent)
}
