package hashmap

/*

# Open addressing over byte-string keys

Map[V] stores every pair directly in a fixed-size slot array. A slot is
either empty (nil) or points at one pair. Keys are byte strings; the map
keeps its own copy of each key.

## Slot selection and probing

The home slot of a key is

	Djb2(key) mod capacity

Insert and lookup both probe forward one slot at a time from the home slot,
wrapping at the end of the array, until they find an equal key, an empty
slot, or arrive back at the home slot.

Because nothing is ever deleted, an empty slot proves the key is absent: a
present key was placed in the first empty slot of its own probe run, and
that run has only filled up since.

## Resizing is reactive

There is no load factor. The table grows only when an insert of a new key
probes a full cycle without finding an empty slot, which means every slot is
occupied. The map then

1. allocates a slot array of twice the capacity
2. re-probes every existing pair into it, moving the pair pointer so keys
   are not copied again
3. retries the insert, which now must find an empty slot

The worst single insert is therefore O(capacity), immediately before a
resize.

## Deletion

Deletion is not supported. Adding it would need tombstone slots so that a
removed pair does not cut the probe run of a pair placed after it.

*/
