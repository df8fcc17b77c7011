package cli

import (
	"io"
	"os"
	"sync"

	"github.com/schollz/progressbar/v3"
)

// overallBarThreshold is the batch size at which per-file spinner
// output gives way to a single overall bar.
const overallBarThreshold = 10

// progressObserver renders runner progress events on stderr. Small
// batches get an indeterminate spinner labelled with the file being
// hashed; batches of overallBarThreshold or more get a counting bar.
// Rendering is best-effort: the runner already treats the observer as
// fire-and-forget, and everything here is cheap terminal drawing.
type progressObserver struct {
	out io.Writer

	mu  sync.Mutex
	bar *progressbar.ProgressBar
}

func newProgressObserver() *progressObserver {
	return &progressObserver{out: os.Stderr}
}

func (p *progressObserver) BatchStarted(total int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if total >= overallBarThreshold {
		p.bar = progressbar.NewOptions(total,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("hashing"),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)
	} else {
		p.bar = progressbar.NewOptions(-1,
			progressbar.OptionSetWriter(p.out),
			progressbar.OptionSetDescription("hashing"),
			progressbar.OptionSpinnerType(14),
			progressbar.OptionClearOnFinish(),
		)
	}
}

func (p *progressObserver) TaskStarted(path string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil && !p.bar.IsFinished() && p.bar.GetMax() == -1 {
		p.bar.Describe("hashing " + path)
	}
}

func (p *progressObserver) TaskFinished(string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressObserver) BatchFinished() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.bar != nil {
		_ = p.bar.Finish()
		p.bar = nil
	}
}
