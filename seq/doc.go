package seq

/*

# Growable contiguous sequences

This package provides Sequence[T], a contiguous buffer of element slots with
an explicit length and capacity.

It follows the same "small primitives" style as the rest of go-crzds:

- explicit capacity arithmetic (see GrowCapacity)
- positional edits expressed as one splice primitive
- contract violations returned as sentinel errors, never panics

## Growth

Capacity only ever grows. When an operation needs `required` slots and the
current capacity is smaller, the new capacity is

	max(2*capacity, minimum, required)

and the existing elements are copied into the new buffer. A long run of
pushes therefore costs amortized O(1) per push.

Any growth replaces the buffer. Pointers returned by At and slices returned
by Slice are only valid until the next mutating call.

## Splice

Insert and Remove are both Splice:

	Splice(index, removeCount, items...)

The tail block [index+removeCount, length) is moved to index+len(items)
before the items are copied in. The move relies on the built-in copy, which
is defined for overlapping source and destination.

## Ownership

A Sequence owns its buffer but never its elements. Free drops the buffer
without looking at what is in it; releasing anything an element refers to is
the caller's job.

*/
