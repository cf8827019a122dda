package callout

// Config tunes the placement engine. Zero values are not meaningful; use
// DefaultConfig as the base and override individual fields.
type Config struct {
	// Padding is the clearance enforced between committed callout boxes.
	Padding float64 `toml:"padding" json:"padding"`

	// Margin is the minimum distance kept between a callout and the
	// viewport edges.
	Margin float64 `toml:"margin" json:"margin"`

	// MaxCallouts caps how many callouts one pass will place.
	MaxCallouts int `toml:"max_callouts" json:"max_callouts"`

	// CalloutWidth and CalloutHeight are the nominal box dimensions used
	// when the caller does not measure the rendered callout.
	CalloutWidth  float64 `toml:"callout_width" json:"callout_width"`
	CalloutHeight float64 `toml:"callout_height" json:"callout_height"`

	// MinDistance and MaxDistance bound the randomized polar radius.
	MinDistance float64 `toml:"min_distance" json:"min_distance"`
	MaxDistance float64 `toml:"max_distance" json:"max_distance"`

	// PolarAttempts and SpiralAttempts are the per-strategy try budgets.
	PolarAttempts  int `toml:"polar_attempts" json:"polar_attempts"`
	SpiralAttempts int `toml:"spiral_attempts" json:"spiral_attempts"`

	// EdgeMargin is the gap between a hover callout and its viewport edge.
	EdgeMargin float64 `toml:"edge_margin" json:"edge_margin"`

	// HeaderOffset reserves vertical space for a fixed header overlay when
	// a hover callout is pinned to the top edge. App-layout specific, so it
	// is configuration rather than a constant of the algorithm.
	HeaderOffset float64 `toml:"header_offset" json:"header_offset"`
}

// FillDefaults returns the config with every zero field replaced by its
// DefaultConfig value. JSON and TOML cannot distinguish an omitted field from
// an explicit zero, and zero values are not meaningful here, so partial
// configs from API clients or config files are completed instead of trusted.
func (c Config) FillDefaults() Config {
	d := DefaultConfig()
	if c.Padding == 0 {
		c.Padding = d.Padding
	}
	if c.Margin == 0 {
		c.Margin = d.Margin
	}
	if c.MaxCallouts == 0 {
		c.MaxCallouts = d.MaxCallouts
	}
	if c.CalloutWidth == 0 {
		c.CalloutWidth = d.CalloutWidth
	}
	if c.CalloutHeight == 0 {
		c.CalloutHeight = d.CalloutHeight
	}
	if c.MinDistance == 0 {
		c.MinDistance = d.MinDistance
	}
	if c.MaxDistance == 0 {
		c.MaxDistance = d.MaxDistance
	}
	if c.PolarAttempts == 0 {
		c.PolarAttempts = d.PolarAttempts
	}
	if c.SpiralAttempts == 0 {
		c.SpiralAttempts = d.SpiralAttempts
	}
	if c.EdgeMargin == 0 {
		c.EdgeMargin = d.EdgeMargin
	}
	if c.HeaderOffset == 0 {
		c.HeaderOffset = d.HeaderOffset
	}
	return c
}

// DefaultConfig returns the tuning used by the production map.
func DefaultConfig() Config {
	return Config{
		Padding:        15,
		Margin:         10,
		MaxCallouts:    20,
		CalloutWidth:   220,
		CalloutHeight:  140,
		MinDistance:    60,
		MaxDistance:    200,
		PolarAttempts:  100,
		SpiralAttempts: 30,
		EdgeMargin:     10,
		HeaderOffset:   80,
	}
}
