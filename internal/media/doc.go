// Package media resolves export media references and copies media files into
// the generated site.
//
// The export scatters media under nested directories; the site serves
// everything from a single flat media/ directory keyed by basename. The
// Copier performs the flattening copy, and ResolvePath performs the matching
// path mapping the renderer uses for img and lightbox targets.
package media
