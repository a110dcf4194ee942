// Package imaging provides the pixel-level side of text-art conversion.
//
// It loads and caches decoded images, prepares them for tiling (region crop,
// tonal adjustments, normalization to *image.NRGBA) and reduces rectangular
// tiles to their average luminosity and color.
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, (x1,y1) is inclusive (top-left), (x2,y2) is exclusive (bottom-right)
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. Prepare returns an image
// that the caller must treat as read-only; Reduce only reads from it, so any
// number of goroutines may reduce tiles of the same prepared image at once.
//
// # Luminance
//
// Tiles are weighted with 0.21*R + 0.72*G + 0.07*B on 8-bit channel values,
// giving a luminosity on the same 0-255 scale as the channels. Alpha is
// ignored: a transparent pixel counts with its stored color.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or with x1 >= x2 / y1 >= y2
//   - Missing files, directories and undecodable data during loading
//   - Empty tiles (*EmptyTileError), which point at a geometry bug
package imaging
