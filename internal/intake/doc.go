// Package intake stores admitted uploads provisionally.
//
// The local intake writes the photo bytes through [store.PhotoFileStorage],
// measures the image dimensions and creates a pending submission with one
// attached media row. It reports partial progress through
// [models.IntakeResult] so that callers can compensate failures.
package intake
