// Package pipeline runs one detection request end to end.
//
// A request flows through four stages in a fixed order:
//
//	decode -> detect -> render -> encode
//
// and produces exactly one JSON document: the success form
//
//	{"detections": [...], "processedImage": "<base64 JPEG>", "processingTime": 12.3, "sessionId": "..."}
//
// or the error form
//
//	{"error": "...", "sessionId": "..."}
//
// # Timing
//
// processingTime covers detect, render and encode, in milliseconds. Decoding
// the input is excluded.
//
// # Error Handling
//
// Any stage failure aborts the remaining stages. Failures are returned as
// *Error carrying a Kind:
//   - InvalidInput: missing or ambiguous image source, malformed payload,
//     unparsable image, missing session id, threshold outside [0, 1]
//   - NotFound: the image path does not name a readable file
//   - Unexpected: anything else
//
// The session id is echoed in both forms. When it is not known (for example
// argument parsing failed first) the placeholder "unknown" is used.
//
// # Concurrency
//
// A Pipeline holds no per-request state. The stages it is built from are
// expected to be stateless too, so one Pipeline may serve parallel requests.
package pipeline
