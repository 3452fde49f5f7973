package profile

import (
	"sort"

	"github.com/AnyUserName/codecq/internal/fidelity"
)

// Profile names a set of SSIM parameters.
type Profile struct {
	Name         string
	K1           float64
	K2           float64
	WindowSize   int     // odd; sigma stays fixed at fidelity.WindowSigma
	DynamicRange float64 // L
}

// Built-in profiles.
var profiles = map[string]Profile{
	"reference": {
		Name:         "reference",
		K1:           0.01,
		K2:           0.04,
		WindowSize:   11,
		DynamicRange: 255,
	},
	// Stabilizers from Wang et al. 2004.
	"wang2004": {
		Name:         "wang2004",
		K1:           0.01,
		K2:           0.03,
		WindowSize:   11,
		DynamicRange: 255,
	},
	"small-window": {
		Name:         "small-window",
		K1:           0.01,
		K2:           0.04,
		WindowSize:   7,
		DynamicRange: 255,
	},
}

// Get returns a profile by name. Falls back to reference if unknown.
func Get(name string) Profile {
	if p, ok := profiles[name]; ok {
		return p
	}
	p := profiles["reference"]
	p.Name = name // preserve requested name
	return p
}

// Known reports whether name is a built-in profile.
func Known(name string) bool {
	_, ok := profiles[name]
	return ok
}

// Names lists the built-in profiles in sorted order.
func Names() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// SSIMOptions converts the profile for the metric engine.
func (p Profile) SSIMOptions() fidelity.SSIMOptions {
	return fidelity.SSIMOptions{
		K1:           p.K1,
		K2:           p.K2,
		WindowSize:   p.WindowSize,
		DynamicRange: p.DynamicRange,
	}
}
