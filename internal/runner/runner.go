// Package runner dispatches file hashing work, sequentially or across a
// bounded worker pool, and turns per-file outcomes into the final
// report. Exactly one outcome is produced per input path in every mode.
package runner

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/lookbusy1344/hashgo/internal/config"
	"github.com/lookbusy1344/hashgo/internal/hash"
)

// State tracks where a dispatcher is in its run lifecycle.
type State int

const (
	StateIdle State = iota
	StateDispatching
	StateCollecting
	StateReported
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "Idle"
	case StateDispatching:
		return "Dispatching"
	case StateCollecting:
		return "Collecting"
	case StateReported:
		return "Reported"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// ErrPartialFailure is returned when at least one file failed to hash.
// Successful files were still reported; the caller maps this to a
// non-zero exit status so scripts never mistake a partial run for a
// clean one.
var ErrPartialFailure = errors.New("one or more files failed to hash")

// Outcome is the result for a single path: either the encoded digest
// text or the error that stopped it. Never both. Duration is how long
// the hash took, for the --debug slow-file note.
type Outcome struct {
	Path     string
	Text     string
	Err      error
	Duration time.Duration
}

// slowHashThreshold is the duration past which --debug reports how long
// a file took to hash.
const slowHashThreshold = 200 * time.Millisecond

// Dispatcher owns one run: the immutable settings, the two output
// sinks, and the optional progress observer. A Dispatcher is not
// reusable across runs.
type Dispatcher struct {
	settings *config.Settings
	out      io.Writer
	errOut   io.Writer
	observer Observer

	mu    sync.Mutex
	state State
}

// New builds a Dispatcher. A nil observer disables progress
// notification.
func New(s *config.Settings, out, errOut io.Writer, obs Observer) *Dispatcher {
	if obs == nil {
		obs = NopObserver{}
	}
	return &Dispatcher{
		settings: s,
		out:      out,
		errOut:   errOut,
		observer: obs,
		state:    StateIdle,
	}
}

// State reports the dispatcher's current lifecycle state.
func (d *Dispatcher) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}

func (d *Dispatcher) setState(s State) {
	d.mu.Lock()
	d.state = s
	d.mu.Unlock()
}

// Run hashes every path and writes the report. Single-threaded mode (or
// a single path) processes and prints in input order; multi-threaded
// mode fans out to the worker pool and flushes all lines afterwards
// through this one goroutine, so output lines never interleave.
//
// Returns ErrPartialFailure if any file failed; per-file diagnostics
// have already been written to the error sink by then.
func (d *Dispatcher) Run(paths []string) error {
	if d.settings.Limit > 0 && len(paths) > d.settings.Limit {
		paths = paths[:d.settings.Limit]
	}
	if len(paths) == 0 {
		d.setState(StateReported)
		return nil
	}

	d.setState(StateDispatching)
	notify(func() { d.observer.BatchStarted(len(paths)) })

	var outcomes []Outcome
	if d.settings.SingleThread || len(paths) == 1 {
		outcomes = d.runSequential(paths)
	} else {
		outcomes = d.runParallel(paths)
		d.setState(StateCollecting)
		for i := range outcomes {
			d.write(&outcomes[i])
		}
	}

	notify(func() { d.observer.BatchFinished() })
	d.setState(StateReported)

	for i := range outcomes {
		if outcomes[i].Err != nil {
			return ErrPartialFailure
		}
	}
	return nil
}

// runSequential hashes in input order, writing each outcome as soon as
// it is known.
func (d *Dispatcher) runSequential(paths []string) []Outcome {
	outcomes := make([]Outcome, len(paths))
	for i, p := range paths {
		outcomes[i] = d.hashOne(p)
		d.write(&outcomes[i])
	}
	return outcomes
}

// hashOne produces the single outcome for one path.
func (d *Dispatcher) hashOne(path string) Outcome {
	notify(func() { d.observer.TaskStarted(path) })
	start := time.Now()
	text, err := hash.FileEncoded(path, d.settings.Algorithm, d.settings.Encoding)
	elapsed := time.Since(start)
	notify(func() { d.observer.TaskFinished(path) })
	if err != nil {
		return Outcome{Path: path, Err: err, Duration: elapsed}
	}
	return Outcome{Path: path, Text: text, Duration: elapsed}
}

// write emits one outcome: digest lines to the primary sink, failures to
// the diagnostic sink. Only ever called from the dispatching goroutine.
func (d *Dispatcher) write(o *Outcome) {
	if o.Err != nil {
		fmt.Fprintf(d.errOut, "File error for '%s': %v\n", o.Path, o.Err)
		return
	}
	if d.settings.ExcludeNames {
		fmt.Fprintf(d.out, "%s\n", o.Text)
	} else {
		fmt.Fprintf(d.out, "%s %s\n", o.Text, o.Path)
	}
	if d.settings.Debug && o.Duration >= slowHashThreshold {
		fmt.Fprintf(d.errOut, "File '%s' took %.2fs to hash\n", o.Path, o.Duration.Seconds())
	}
}

// notify shields hashing from the observer: a panicking progress sink
// must never take the run down with it.
func notify(fn func()) {
	defer func() { _ = recover() }()
	fn()
}
