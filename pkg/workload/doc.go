// Package workload drives a kvstore cache with scripted or random operations.
//
// Parse reads a YAML script:
//
//	capacity: 10
//	ops:
//	  - {op: put, key: a, value: "1"}
//	  - {op: get, key: a}
//
// Replay runs the script against any Store and returns one Result per
// operation. Stress runs random operations from several goroutines under an
// errgroup and finishes with the store's invariant check.
package workload
