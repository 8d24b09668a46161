// Package resolve implements the two-phase cross-module resolver described
// in spec.md §4.5-§4.6: Resolve reserves a shell for every top-level
// declaration and binds names; Finish fills every shell's body, resolving
// type expressions, checking interface/extension completeness, and
// validating accessibility.
//
// Both phases run once per compilation, in the registration order of the
// module graph. Neither phase invents types: every resolution failure
// becomes a diagnostic on the collector, and the offending declaration is
// skipped by later dependent checks rather than aborting the run.
package resolve
