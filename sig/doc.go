// Package sig implements the signature table described in spec.md §4.2.
//
// A [Table] is a grow-only, index-addressed store of [TypeSignature] values.
// Entries are addressed by [Handle], a dense integer cheap enough to copy
// freely and indirect enough to break reference cycles: a class can name
// itself, or two classes can name each other, without either signature
// literally embedding the other.
//
// # Reserve, fill, seal
//
// Table mirrors the shell-then-fill lifecycle the teacher's schema package
// uses for [schema.DataType] (reserve a shell during the first pass over a
// module, fill its body once the second pass reaches it, then treat it as
// immutable): [Table.Reserve] inserts a shell during the resolver's Resolve
// phase so forward references have something to point at; [Table.FillClass],
// [Table.FillInterface], [Table.FillFunction], [Table.FillExtension], and
// [Table.FillModule] perform the single, final write that turns a shell into
// a complete signature during Finish. Filling an already-filled handle is a
// programmer error and panics rather than producing a diagnostic (spec.md
// §7: "only internal invariant breaches... abort").
//
// There are two exceptions to "filled means immutable", both on class
// signatures and both driven by extensions: [Table.RecordImplementedInterface]
// appends to a class's implemented-interface set once an extension's
// completeness check passes (spec.md §4.6 step 4), and [Table.AppendMethod]
// attaches an extension method that its interface does not require to the
// class as a regular method. No other mutation of an already-filled
// signature is permitted.
//
// # Decorators
//
// [Table.WrapNullable] and [Table.WrapReference] are deduplicated: asking
// for the same decoration of the same inner handle twice returns the same
// Handle both times, so structural type equality reduces to Handle equality.
//
// # Concurrency
//
// Unlike the teacher's [schema.Registry], which is mutex-guarded to serve
// concurrent LSP workspace reads, Table is not internally synchronized. This
// is a deliberate divergence: spec.md §5 specifies exactly one writer per
// compilation and no concurrent compilation of a single program, so the
// locking the teacher needs for its LSP use case would be dead weight here.
package sig
