package toolchain

import (
	"context"

	"github.com/rtstage/rtstage/internal/config"
	"github.com/rtstage/rtstage/internal/platform"
)

// Location is where the runtime libraries live and which extension they use.
type Location struct {
	Dir      string
	Ext      platform.Extension
	Strategy string
}

// Locator resolves a Location from the build environment.
type Locator interface {
	// Locate resolves the search directory and extension.
	Locate(ctx context.Context, env config.Context) (Location, error)
	// Reads lists the build variables Locate depends on.
	Reads() []string
}

// Strategy names accepted by Dispatch.
const (
	StrategyAuto   = "auto"
	StrategyQuery  = "query"
	StrategyDirect = "direct"
)

// Dispatch returns the Locator for a strategy name. "auto" picks the query
// strategy when RUSTC is set and the direct strategy otherwise. Unknown
// names yield a Locator that always fails.
func Dispatch(strategy string, env config.Context) Locator {
	switch strategy {
	case StrategyQuery:
		return &QueryLocator{}
	case StrategyDirect:
		return &DirectLocator{}
	case StrategyAuto, "":
		if env.Has(config.EnvRustc) {
			return &QueryLocator{}
		}
		return &DirectLocator{}
	default:
		return &unknownLocator{name: strategy}
	}
}

// unknownLocator is returned for unrecognized strategy names.
type unknownLocator struct {
	name string
}

func (u *unknownLocator) Locate(_ context.Context, _ config.Context) (Location, error) {
	return Location{}, &UnknownStrategyError{Name: u.name}
}

func (u *unknownLocator) Reads() []string { return nil }
