// Package export reads the JSON files of an unpacked Facebook data export.
//
// The export layout is fixed relative to its root: the feed lives in
// posts/profile_posts_1.json, albums in posts/album/*.json, and media files
// under posts/media. The loader applies mojibake repair to every
// human-readable field and tolerates malformed records by skipping them with
// a diagnostic, so one bad entry never loses the rest of an archive.
package export
