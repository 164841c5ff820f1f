// Package download acquires remote audio through the yt-dlp binary.
//
// The pipeline only needs one operation: given an http(s) URL, produce a
// local audio file and the discovered title. Conversion to the normalized
// MP3 happens afterwards in the media package, so this stage keeps whatever
// container yt-dlp hands back.
package download
