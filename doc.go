/*
Package multimut provides runtime-checked retrieval of multiple
simultaneously usable pointers into distinct entries of an associative
container.  Pulling a pointer to an entry normally invalidates, or at
least casts doubt on, pointers pulled earlier; multimut makes the
several-entries-at-once case safe by refusing to hand out two pointers
to the same entry.  Swapping, linking, or rebalancing values held under
different keys becomes a straight-line sequence of pulls instead of a
copy-modify-reinsert dance.

Uses

- Swapping or combining the values of two or three keys in place

- Batch in-place edits driven by a caller-supplied key list

- Any algorithm that wants several live entry pointers without copying

Identity

Two keys alias when they resolve to the same value cell.  The checks
compare cell addresses, never key hashes or value contents: equal
values under different keys are distinct, and any number of lookup
paths to one cell count as one entry.  For the pair and triple helpers
key equality itself is the tripwire, since distinct keys of a map
cannot share a cell.

Violations are programming errors, not runtime conditions to handle,
so they panic.  The panic value wraps ErrAliased, ErrBufferFull or
ErrNotFound, which recovery-minded callers can match with errors.Is.
A merely absent key in the Get-flavored operations is an ordinary
outcome and reports ok=false.

Containers

The checks run against anything implementing Container: a lookup from
key to the address of the value's cell.  PtrMap adapts a builtin map
with boxed values, LRUMap a fixed-size LRU cache, BTreeMap an ordered
B-tree.  Each adapter's cells stay put across growth, recency updates
and rebalancing, which is what makes cell addresses usable as
identities.  See the adapter docs for what must not happen to a
container while a session is using it.

Concurrency

A tracker, wrapper or iterator must stay confined to one goroutine.
The aliasing check guards against overlapping pointers within a
session, not against data races; sharing the container itself across
goroutines needs external synchronization as usual.

Inspiration

The multi_mut crate (https://github.com/golddranks/multi_mut) does
this for Rust's HashMap, where the borrow checker forces the issue at
compile time.  Go has no such enforcement, but the discipline is worth
keeping: bugs that corrupt an entry through a forgotten second pointer
are just as real in a GC'd language, only quieter.
*/
package multimut
