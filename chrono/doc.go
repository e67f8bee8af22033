// Package chrono polls a file's modification time so callers can detect
// "has this changed since I last looked" without holding an OS file
// watcher open.
package chrono
