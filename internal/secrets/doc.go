// Package secrets detects likely credentials in staged file contents.
//
// Detection is heuristic and data-driven: an ordered table of regex rules,
// optional keyword gates, and filename cues. Evidence excerpts are always
// masked so a detected secret is never re-leaked into terminal output or
// logs. False positives are an accepted tradeoff of an advisory tool.
package secrets
