package modules

import (
	"context"

	"golang.org/x/sync/errgroup"

	"numconv/pkg/probe"
)

type ProbeServer struct {
	Name          string
	Version       string
	ListenAddress string
	Checks        map[string]probe.Check
}

func (p ProbeServer) Run(ctx context.Context, g *errgroup.Group) {
	server := probe.NewServer(p.ListenAddress, probe.Options{Name: p.Name, Version: p.Version})

	for name, check := range p.Checks {
		server = server.WithCheck(name, check)
	}

	goNamed(ctx, g, "probeServer.Run", server.Run)
}
