package gstyle

import "time"

// Option configures an Engine during creation.
//
// Example:
//
//	// Default engine: shared pools, scale 1, antialiasing on
//	e := gstyle.NewEngine()
//
//	// HiDPI engine with its own pools
//	e := gstyle.NewEngine(gstyle.WithScale(2), gstyle.WithPools(gstyle.NewPools(32)))
type Option func(*options)

// options holds optional configuration for Engine creation.
type options struct {
	pools     *Pools
	scale     float64
	antialias Opt[bool]
	render    renderConfig
	clock     func() time.Time
}

// defaultOptions returns the default engine options.
func defaultOptions() options {
	return options{
		pools:  defaultPools,
		scale:  1,
		render: defaultRenderConfig(),
		clock:  time.Now,
	}
}

// antialiasing resolves the antialias policy. Unless set explicitly it is
// enabled below a scale of 1.5, where jagged edges are visible.
func (o options) antialiasing() bool {
	return o.antialias.Or(o.scale < 1.5)
}

// WithPools sets the buffer pools shared by the engine's layer caches.
// Engines sharing pools share buffers for equal render states.
func WithPools(p *Pools) Option {
	return func(o *options) {
		if p != nil {
			o.pools = p
		}
	}
}

// WithScale sets the HiDPI scale applied to installed styles.
// Non-positive values are ignored.
func WithScale(f float64) Option {
	return func(o *options) {
		if f > 0 {
			o.scale = f
		}
	}
}

// WithAntialiasing forces antialiasing on or off regardless of the scale.
func WithAntialiasing(on bool) Option {
	return func(o *options) {
		o.antialias = Some(on)
	}
}

// WithShadowDivisors overrides InsetShadowDivisor and OutsetShadowDivisor.
// Non-positive values keep the defaults.
func WithShadowDivisors(inset, outset float64) Option {
	return func(o *options) {
		if inset > 0 {
			o.render.insetDivisor = inset
		}
		if outset > 0 {
			o.render.outsetDivisor = outset
		}
	}
}

// WithClock sets the time source for animation lifetimes.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}
