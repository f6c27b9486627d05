// Package subtitle decodes and retimes SRT subtitle tracks.
//
// Time is a non-negative instant with millisecond resolution. StartEnd
// pairs two of them, and Offset shifts a StartEnd with saturation at zero
// and at the largest representable Time. Time.Duration, Offset.Duration
// and OffsetFromDuration convert to and from time.Duration for callers
// that work with the standard library clock types.
//
// Decoder pulls Blocks from a LineSource one at a time and stops at the
// first malformed block with a *ParseError. Encoder writes Blocks back out
// with fresh sequential numbers. Open and NewUTF8Reader handle charset
// detection and transcoding to UTF-8.
package subtitle
