// Package resource bounds the memory, worker concurrency and IO
// throughput used by distance computations. A single Controller may be
// shared by concurrent requests.
package resource
