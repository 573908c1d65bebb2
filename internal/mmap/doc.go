// Package mmap provides read-only memory-mapped files.
//
// Sequence inputs are scanned once from start to end, so the local blob
// store maps them and advises the kernel of sequential access:
//
//	m, err := mmap.Open("genomes.fasta")
//	if err != nil { ... }
//	defer m.Close()
//	_ = m.Advise(mmap.AccessSequential)
//	data := m.Bytes()
//
// On Unix the mapping uses mmap(2) and madvise(2); on Windows it uses
// CreateFileMapping/MapViewOfFile and Advise is a no-op.
//
// Close is idempotent. Callers must not use a slice returned by Bytes after
// Close returns.
package mmap
