// Package scope implements the scope tree described in spec.md §4.3.
//
// A [Scope] is a node in a parent-chain hierarchy — root, module,
// class/interface body, function body, block — mapping names to
// [sig.Handle] values or local value bindings. Scopes never own signatures;
// they only hold handles, so the signature table remains the single source
// of type identity (spec.md §3).
//
// [Scope.Define] rejects a second binding of the same name in the same local
// map (spec.md §4.3: already_defined), citing both spans so the caller can
// build a two-span diagnostic. [Scope.Lookup] walks the local map first,
// then the parent chain, returning the first hit — this is also how the
// resolver's open-question decision (spec.md §9) gets implemented for free:
// when a dotted expression's head name resolves to both a value binding and
// a type handle in overlapping scopes, whichever one occupies the innermost
// scope's local map wins, which is the value binding whenever one shadows an
// outer type name.
//
// [Scope.LookupQualified] walks a dotted path (`a.b.c`) by resolving the
// head name normally, then asking a [MemberResolver] to traverse into module
// exports or class members for each subsequent segment. Scope depends only
// on [sig.Handle] for this, not on the signature table itself, keeping the
// dependency one-directional.
package scope
