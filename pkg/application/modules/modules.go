// Package modules runs the long-lived parts of the service inside one
// errgroup so that the first failure stops everything.
package modules

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"numconv/pkg/contextx"
)

var logger = contextx.LoggerFromContextOrDefault //nolint:gochecknoglobals

// Module is started once and must return from its goroutines when ctx is
// done.
type Module interface {
	Run(ctx context.Context, g *errgroup.Group)
}

// Start runs every module in g.
func Start(ctx context.Context, g *errgroup.Group, mods ...Module) {
	for _, m := range mods {
		m.Run(ctx, g)
	}
}

func goNamed(ctx context.Context, g *errgroup.Group, name string, run func(context.Context) error) {
	g.Go(func() error {
		if err := run(ctx); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}

		return nil
	})
}
