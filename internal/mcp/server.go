package mcp

import (
	"context"

	"fair-mcs/internal/config"
	"fair-mcs/internal/rng"

	mcpsdk "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog/log"
)

// ServerName is reported to MCP clients during initialization.
const ServerName = "fair-mcs"

// Server exposes the loss engine as MCP tools.
type Server struct {
	cfg     *config.AppConfig
	version string
	// sources builds the random source for a request. A nil seed means the
	// caller did not ask for reproducibility.
	sources func(seed *int64) rng.Source
}

// NewServer creates a new MCP server.
func NewServer(cfg *config.AppConfig, version string) *Server {
	s := &Server{cfg: cfg, version: version}
	s.sources = s.defaultSource
	return s
}

func (s *Server) defaultSource(seed *int64) rng.Source {
	if seed != nil {
		return rng.NewSeeded(*seed)
	}
	if s.cfg.HasSeed {
		return rng.NewSeeded(s.cfg.Seed)
	}
	return rng.NewDefault()
}

// build assembles the SDK server with every tool registered.
func (s *Server) build() *mcpsdk.Server {
	server := mcpsdk.NewServer(&mcpsdk.Implementation{Name: ServerName, Version: s.version}, nil)
	s.registerTools(server)
	return server
}

// Run serves MCP over stdio until ctx is cancelled or the client disconnects.
func (s *Server) Run(ctx context.Context) error {
	log.Info().Str("version", s.version).Msg("MCP server listening on stdio")
	if err := s.build().Run(ctx, &mcpsdk.StdioTransport{}); err != nil {
		log.Error().Err(err).Msg("MCP server stopped")
		return err
	}
	return nil
}
