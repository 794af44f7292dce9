// Package builder runs a complete archive build: copy media, load the
// export, and write every page of the static site. A build is idempotent,
// so rerunning it against an unchanged export rewrites the same site.
package builder
