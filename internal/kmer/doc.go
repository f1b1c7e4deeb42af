// Package kmer defines the k-mer key type and the window enumerator that
// produces every length-k substring of a sequence chunk.
//
// Keys are byte-exact: no case folding and no reverse-complement folding.
// Callers upper-case sequence data before it reaches this package.
package kmer
