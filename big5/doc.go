// Package big5 converts between UTF-8 and the hex-encoded Big5 byte pairs
// a few peripheral host integrations (clipboard helpers, legacy dictionary
// exports) still expect.
package big5
