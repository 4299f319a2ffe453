// Package detection produces reproducible object detections without a model.
//
// The detector stands in for a real inference engine. It derives a seed from
// the image's pixel content and draws a small set of labeled bounding boxes
// from a generator built on that seed, so the same image always yields the
// same detections on any platform and in any process.
//
// # Classes
//
// Detections are always labeled with one of a closed set of classes:
//
//   - Toolbox
//   - Oxygen Tank
//   - Fire Extinguisher
//   - Other
//
// Fire Extinguisher and Oxygen Tank are high-confidence classes and draw their
// scores from a narrower, higher range than the rest.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at the top-left corner
//   - X increases rightward
//   - Y increases downward
//   - A box covers [X, X+Width) x [Y, Y+Height) and always lies inside the image
//
// # Thresholds and Filters
//
// Candidates whose confidence falls below the threshold are dropped without
// being replaced. Because every candidate consumes the same random draws
// whether or not it is emitted, raising the threshold can only remove
// detections. A class filter narrows the pool candidates are drawn from; a
// filter that matches no known class produces zero detections.
//
// # Thread Safety
//
// Detect keeps no package-level mutable state. Each call builds its own
// generator, so concurrent calls on different images are safe.
package detection
