package sink

import (
	"file-exchange/domain"
	"fmt"
	"io"
	"sync"

	"github.com/gookit/color"
)

// ConsoleProgress is the default percentage sink. It rewrites a single
// terminal line per upload and ends it once the upload is complete.
type ConsoleProgress struct {
	mu      sync.Mutex
	out     io.Writer
	colours bool
}

func NewConsoleProgress(out io.Writer, colours bool) *ConsoleProgress {
	return &ConsoleProgress{out: out, colours: colours}
}

func (c *ConsoleProgress) OnProgress(evt domain.ProgressEvent) {
	line := fmt.Sprintf("Uploading %s... %.2f%% completed", evt.Filename, evt.Percent())
	if c.colours {
		style := color.New(color.FgCyan)
		if evt.Done() {
			style = color.New(color.FgGreen)
		}
		line = style.Render(line)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if evt.Done() {
		_, _ = fmt.Fprintf(c.out, "\r%s\n", line)
		return
	}
	_, _ = fmt.Fprintf(c.out, "\r%s", line)
}
