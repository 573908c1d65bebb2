// Package conv provides bounds-checked integer conversions for column
// indices stored as uint32 (roaring bitmaps, word pattern entries).
package conv
