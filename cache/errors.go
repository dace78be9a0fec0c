package cache

// cacheError is a const-friendly error type, so sentinels can be
// declared as untyped constants and compared with errors.Is.
type cacheError string

func (e cacheError) Error() string { return string(e) }

// ErrNegativeCapacity is returned by policy constructors when
// Options.Capacity is negative. Zero is a valid degenerate capacity
// (a cache that never retains entries), so it is not an error.
const ErrNegativeCapacity = cacheError("cache: negative capacity")
