// Package logtail reads the end of the browse session log.
//
// The browser cannot write log lines to the terminal it draws on, so a
// browse session logs to a file instead and the UI shows the last lines of
// that file on request. Debug entries there carry the cause behind every
// empty reply from the API.
//
//	lines, err := logtail.File("/home/me/.cache/cocktaildb/browse.log", 200)
//
// A missing file is not an error; it simply has no lines yet.
package logtail
