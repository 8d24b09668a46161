package tir

import (
	"context"
	"log/slog"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/location"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/resolve"
	"github.com/tim-lang/tir/sig"
	"github.com/tim-lang/tir/source"
	"github.com/tim-lang/tir/syntax"
)

// Source is one (path, text) input pair, the driver surface's input unit
// (spec.md §6).
type Source struct {
	Path string
	Text string
}

// Program is the resolved view of a compilation: the signature table every
// resolved TypeHandle indexes into, and the module graph carrying each
// module's scope, export map, and resolved imports (spec.md §6 "a resolved
// program view (module exports plus signature table)").
type Program struct {
	Table *sig.Table
	Graph *modgraph.Graph
}

// Option configures a Compile call.
type Option func(*config)

type config struct {
	logger     *slog.Logger
	issueLimit int
}

// WithLogger attaches a logger for diagnostic tracing of the compile
// pipeline's phase boundaries.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithIssueLimit caps the number of collected diagnostics; 0 (the default)
// means unlimited. See [diag.Collector].
func WithIssueLimit(limit int) Option {
	return func(c *config) { c.issueLimit = limit }
}

// Compile parses and resolves files, returning the resolved program and the
// accumulated diagnostics (spec.md §6). A non-OK result's Program is still
// populated as far as resolution got: every shell that resolved fully is
// filled, per spec.md §7's "accumulate, never unwind" propagation policy.
func Compile(ctx context.Context, files []Source, opts ...Option) (*Program, diag.Result) {
	cfg := &config{}
	for _, opt := range opts {
		opt(cfg)
	}

	registry := source.NewRegistry()
	issues := diag.NewCollector(cfg.issueLimit)
	graph := modgraph.New()
	seen := make(map[location.SourceID]bool, len(files))

	for _, f := range files {
		id, err := registry.Register(f.Path, f.Text)
		if err != nil {
			issues.Collect(diag.NewIssue(diag.Error, diag.E_DUPLICATE_SOURCE, err.Error()).Build())
			continue
		}
		if seen[id] {
			// Same path registered again with byte-identical content
			// (spec.md §4.1): a no-op re-registration, not a second module.
			continue
		}
		seen[id] = true

		file, parseIssues := syntax.Parse(id, f.Text)
		issues.CollectAll(parseIssues)
		if len(parseIssues) > 0 {
			// spec.md §6: "the resolver treats a file with any syntax error
			// as contributing no declarations."
			continue
		}

		name := modgraph.DeriveModuleName(f.Path)
		graph.AddModule(id, name, file)
	}

	resolve.TraceDebug(ctx, cfg.logger, "tir: parsed sources", slog.Int("modules", len(graph.Modules())))

	table := sig.NewTable()
	idx := resolve.Resolve(ctx, graph, table, issues, resolve.WithLogger(cfg.logger))
	resolve.TraceDebug(ctx, cfg.logger, "tir: resolve phase complete")

	resolve.Finish(ctx, graph, idx, table, issues, resolve.WithLogger(cfg.logger))
	resolve.TraceDebug(ctx, cfg.logger, "tir: finish phase complete")

	return &Program{Table: table, Graph: graph}, issues.Result()
}
