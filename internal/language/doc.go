// Package language normalizes recognizer language codes for metadata and
// log output.
package language
