// Package syntax implements the hand-written scanner and parser that
// produce the syntax trees the resolver consumes (spec.md §6's "parser
// contract").
//
// This is a deliberate departure from the teacher's ANTLR-generated grammar
// (schema/internal/parse/parser.go): spec.md §1 places "the lexical/grammar
// layer (tokenization, combinator parsing into syntax nodes)" out of scope
// for the resolver core, but the resolver still needs *something* producing
// syntax trees to be testable end-to-end, so this package supplies a small,
// direct recursive-descent implementation of exactly the grammar spec.md §6
// describes: module-level declarations (class, interface, extend, func,
// static, use), and type expressions (primitive keyword, identifier or
// dotted path, `?T`, `ref T`). Statement and expression bodies are skipped
// by brace matching rather than parsed, since concrete statement/expression
// forms (loops, match arms, generics) are non-goals for the resolver
// (spec.md §1, §7's function_call_argument_count_mismatch/type_mismatch are
// reserved for a later expression pass).
//
// Parse failures are reported as [diag.E_SYNTAX] issues carrying per-location
// messages, mirroring the teacher's parse-error-as-diagnostic convention in
// schema/internal/parse/parser.go. Per spec.md §6, a file with any syntax
// error contributes no declarations; [Parse] still returns the partial tree
// it built so the driver can decide, but a non-empty issue list means the
// caller must discard the returned File's declarations.
package syntax
