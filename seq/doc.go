// Package seq provides small generic helpers for ordered sequences:
// concatenation, positional mask selection, batched function
// application, zipping, deduplication, partitioning and prefix-taking.
//
// Functions over slices preserve the caller's concrete slice type via
// ~[]E type parameters; string-specialized variants cover text. Zip,
// Unique and TakeWhile are lazy: they return iter.Seq values that are
// finite, single-pass and not restartable once consumed.
//
// The helpers are independent of each other and carry no shared state.
package seq
