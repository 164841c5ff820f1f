// Package transcript holds the canonical in-memory transcript representation
// and its four serializations (plain text, JSON, SRT, WebVTT).
//
// All renderers are pure functions over the transcript value: deterministic,
// side-effect free, and byte-stable for equal inputs. Timestamp encoding for
// the subtitle formats shares one algorithm that floor-splits whole seconds
// and clamps rounded milliseconds to 999 so values like 59.9996 never render
// as a 60th second.
package transcript
