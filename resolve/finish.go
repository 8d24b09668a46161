package resolve

import (
	"context"

	"github.com/tim-lang/tir/diag"
	"github.com/tim-lang/tir/modgraph"
	"github.com/tim-lang/tir/sig"
)

// Finish runs Phase Two (spec.md §4.5) across every module in g, filling
// every shell Resolve reserved. Sub-passes run in a fixed global order,
// across all modules at once rather than one module at a time, because
// later kinds depend on earlier kinds already being filled everywhere:
//
//  1. Interfaces — no dependency on anything but other interfaces' parent
//     chains, which is why they go first.
//  2. Classes — need nothing but their own field/method type expressions.
//  3. Extensions — completeness checking needs both a target class's own
//     fields/methods (2) and a target interface's full, inherited
//     requirement set (1).
//  4. Free functions — independent of the above, deferred only so any
//     class/interface forward reference in a function signature already
//     resolves.
//  5. Statics — bound last since nothing else depends on a static's scope
//     entry existing.
func Finish(ctx context.Context, g *modgraph.Graph, idx Index, table *sig.Table, issues *diag.Collector, opts ...Option) {
	cfg := applyOptions(opts)

	finishInterfaces(g, idx, table, issues)
	TraceDebug(ctx, cfg.logger, "finish: interfaces filled")

	finishClasses(g, idx, table, issues)
	TraceDebug(ctx, cfg.logger, "finish: classes filled")

	finishExtensions(g, idx, table, issues)
	TraceDebug(ctx, cfg.logger, "finish: extensions filled")

	finishFreeFunctions(g, idx, table, issues)
	TraceDebug(ctx, cfg.logger, "finish: free functions filled")

	finishStatics(g, idx, table, issues)
	TraceDebug(ctx, cfg.logger, "finish: statics bound")
}
