package runner

// Observer receives progress events from a run. Implementations render
// them however they like (the CLI draws a progress bar); the dispatcher
// treats every call as fire-and-forget and makes no ordering promises
// between progress events and output flushing.
//
// TaskStarted/TaskFinished may be called concurrently from multiple
// workers; implementations must be safe for that.
type Observer interface {
	BatchStarted(total int)
	TaskStarted(path string)
	TaskFinished(path string)
	BatchFinished()
}

// NopObserver discards all progress events.
type NopObserver struct{}

func (NopObserver) BatchStarted(int)    {}
func (NopObserver) TaskStarted(string)  {}
func (NopObserver) TaskFinished(string) {}
func (NopObserver) BatchFinished()      {}
