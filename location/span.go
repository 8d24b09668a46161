package location

import "fmt"

// Span is a half-open byte range [Lo, Hi) within one source file (spec.md
// §3). Spans are the unit of location reporting: every diagnostic, and every
// reserved signature-table entry, carries one.
type Span struct {
	Source SourceID
	Lo, Hi uint32
}

// NewSpan builds a Span over [lo, hi). Panics if hi < lo, the same geometric
// soundness invariant spec.md §3 states for every TypeHandle's owning
// declaration.
func NewSpan(source SourceID, lo, hi int) Span {
	if hi < lo {
		panic(fmt.Sprintf("location.NewSpan: end %d before start %d", hi, lo))
	}
	return Span{Source: source, Lo: uint32(lo), Hi: uint32(hi)}
}

// Point builds a zero-width Span at a single byte offset.
func Point(source SourceID, offset int) Span {
	return NewSpan(source, offset, offset)
}

// IsZero reports whether s is the zero Span ("no location").
func (s Span) IsZero() bool {
	return s.Source.IsZero() && s.Lo == 0 && s.Hi == 0
}

// Len returns the byte length of the range.
func (s Span) Len() int {
	return int(s.Hi - s.Lo)
}

// Contains reports whether byte offset b falls within the half-open range.
func (s Span) Contains(b int) bool {
	return b >= int(s.Lo) && b < int(s.Hi)
}

// String returns a debug-friendly "source#N:[lo,hi)" representation.
func (s Span) String() string {
	if s.IsZero() {
		return "<no location>"
	}
	return fmt.Sprintf("%s:[%d,%d)", s.Source, s.Lo, s.Hi)
}

// Compare orders spans by source, then start, then end, giving the resolver
// a total order to sort diagnostics by for deterministic output (spec.md §5,
// §8 "Determinism").
func Compare(a, b Span) int {
	if a.Source != b.Source {
		if a.Source < b.Source {
			return -1
		}
		return 1
	}
	if a.Lo != b.Lo {
		if a.Lo < b.Lo {
			return -1
		}
		return 1
	}
	if a.Hi != b.Hi {
		if a.Hi < b.Hi {
			return -1
		}
		return 1
	}
	return 0
}
