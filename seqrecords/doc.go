// Package seqrecords holds named biological sequences and loads them from
// FASTA files, optionally compressed, from any blobstore.BlobStore.
//
// Symbols are NFC-normalised and upper-cased when a Records value is built,
// so word extraction downstream sees one spelling per symbol.
package seqrecords
