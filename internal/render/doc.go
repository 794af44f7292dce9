// Package render turns loaded export data into the archive's HTML pages.
//
// Pages come from embedded html/template files with the stylesheet inlined
// into every document, so the generated site needs no asset pipeline: each
// page stands alone apart from the media files it references. Post bodies
// go through the escape-then-linkify pipeline before rendering and are the
// only pre-built HTML the templates trust; everything else is escaped by
// the template engine.
package render
