// Package dictsvc parses the dictionary-service manifest and builds the
// lookup URL for a chosen service and phrase. It never performs the
// request itself; opening the URL is the host's job.
package dictsvc
