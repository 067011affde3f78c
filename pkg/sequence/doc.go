/*
Package sequence contains the numeric core of Sequencer: the sequence kinds,
the request that parameterizes a sequence and the generator that expands it.

The package is pure. Every function is deterministic and free of I/O, so it can
be called concurrently from any adapter (CLI, HTTP, MCP) without coordination.

# Kinds

  - Arithmetic: term(i) = first + i × difference
  - Geometric: term(i) = first × ratio^i

# Validation

Generate validates its Request before producing any term. Callers never need to
check a Request themselves; an invalid one yields a *ValidationError that wraps
one of the sentinel errors (ErrTermCountNotPositive, ErrTermCountTooLarge,
ErrZeroRatio) and carries the message shown to users.
*/
package sequence
