// Package modgraph holds the module graph: one node per source file,
// holding its parsed declarations, its import list, and a scope for its
// top-level names.
//
// Module identity and import wiring live in their own package, separate
// from parsing, because resolution here is explicitly cross-module: every
// module in a compilation is visible to every other module's imports before
// any of them is fully resolved.
//
// Graph itself only tracks bookkeeping: which modules exist, in what order,
// and their parsed import declarations. The signature-table work of
// reserving a Module handle and filling its export map happens in the
// resolve package's Resolve phase, using Graph as the backing structure;
// [ResolveImports] then performs the import-binding algorithm using the
// exports those fills produced.
package modgraph
