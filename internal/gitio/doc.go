// Package gitio supplies raw repository state to the detection engine: it
// runs read-only git commands for status text, file lists and staged blob
// contents, and probes the repository with go-git for discovery, branch
// and in-progress rebase/merge markers. Nothing here ever mutates the
// repository.
package gitio
