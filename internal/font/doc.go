// Package font assigns private-use-area codepoints to uploaded images and
// records them as single-character bitmap glyph providers in a font document.
//
// The reserved range is U+E000..U+F8FF (6,400 values). Allocation scans from
// a mid-range offset first to reduce collision with externally-authored
// glyphs that tend to start at the range beginning, then wraps to cover the
// rest. Codepoints are counted by Unicode code point, never by UTF-16 unit,
// so multi-unit characters count once.
package font
