package cache

// Keyer generates cache keys for the three content classes of the deck
// pipeline. Keys embed every option that affects the cached bytes, so a
// changed option is a changed key, never a stale hit.
type Keyer interface {
	// PlaylistKey keys a fetched playlist snapshot by provider and playlist.
	PlaylistKey(provider, playlistID string) string

	// PlanKey keys a computed page plan by the deck content hash and the
	// layout options that shaped it.
	PlanKey(deckHash string, opts PlanKeyOpts) string

	// ArtifactKey keys a rendered artifact by the plan hash and render
	// options.
	ArtifactKey(planHash string, opts ArtifactKeyOpts) string
}

// PlanKeyOpts are the layout options that change a plan's bytes.
type PlanKeyOpts struct {
	Rows     int
	Cols     int
	FlipAxis string
}

// ArtifactKeyOpts are the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format string
	Title  string
}

// DefaultKeyer is the standard key generator.
type DefaultKeyer struct{}

// NewDefaultKeyer creates a DefaultKeyer.
func NewDefaultKeyer() Keyer { return &DefaultKeyer{} }

// PlaylistKey generates a key for a playlist snapshot.
func (k *DefaultKeyer) PlaylistKey(provider, playlistID string) string {
	return "playlist:" + provider + ":" + playlistID
}

// PlanKey generates a key for a computed plan.
func (k *DefaultKeyer) PlanKey(deckHash string, opts PlanKeyOpts) string {
	return hashKey("plan", deckHash, opts)
}

// ArtifactKey generates a key for a rendered artifact.
func (k *DefaultKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", planHash, opts)
}

// ScopedKeyer wraps a Keyer with a prefix, isolating cache namespaces when
// several decks share one Redis instance.
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer whose keys all carry the given prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// PlaylistKey generates a prefixed playlist key.
func (k *ScopedKeyer) PlaylistKey(provider, playlistID string) string {
	return k.prefix + k.inner.PlaylistKey(provider, playlistID)
}

// PlanKey generates a prefixed plan key.
func (k *ScopedKeyer) PlanKey(deckHash string, opts PlanKeyOpts) string {
	return k.prefix + k.inner.PlanKey(deckHash, opts)
}

// ArtifactKey generates a prefixed artifact key.
func (k *ScopedKeyer) ArtifactKey(planHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(planHash, opts)
}
