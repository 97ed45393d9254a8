package metrics

// Metrics defines the counters collected by the application.
type Metrics interface {
	IncProviderRequest(endpoint string, status int)
	IncMatchesIngested()
	IncMatchesDropped(reason string)
	IncCacheHit(cache string)
	IncCacheMiss(cache string)
}

// Noop discards everything, used where metrics aren't wired (CLI, tests).
type Noop struct{}

var _ Metrics = Noop{}

func (Noop) IncProviderRequest(string, int) {}
func (Noop) IncMatchesIngested()            {}
func (Noop) IncMatchesDropped(string)       {}
func (Noop) IncCacheHit(string)             {}
func (Noop) IncCacheMiss(string)            {}
