// # SwiftScan: A High-Throughput Streaming Pattern Scanner for Go
//
// SwiftScan counts the lines of a byte stream that contain a fixed literal pattern. It reads through a small reusable buffer, handles patterns that straddle two reads, and counts each line at most once, so memory stays bounded no matter how large the input is.
//
// # Features
//
// - Streaming scanner with a fixed-capacity buffer, first-byte candidate skipping, and cross-read carry-over.
// - Whole-buffer companion (`Scanner.CountBytes`) that produces identical counts for inputs that fit in memory.
// - File-backed helpers over go-billy filesystems (`Scanner.CountFile`, `Scanner.CountFileBytes`).
// - Structural helpers: CSV shape counting (`ShapeOf`), SWAR escape detection (`HasEscapable`), and fixture generation (`Generator`).
// - Benchmarks, fuzz targets, and table-driven unit tests for regression protection.
//
// # Getting Started
//
// The module path is `github.com/oleg578/swiftscan`. The zero value of `Scanner` is ready to use; set `Capacity` or `LineTerminator` before the first scan to tune it.
package swiftscan
