// Package imaging prepares extracted page images for the converted
// document.
//
// An exporter filters out decorative images below a minimum size, scales
// oversized ones down to the bounds of the chosen quality level with
// Catmull-Rom resampling, and encodes the result, JPEG for opaque images
// at the level's quality, PNG when transparency must survive. File names
// follow the stable image_page{page}_{seq} identity used across the
// pipeline, so a reference in the output always names its file.
//
// The package never touches the filesystem; encoded bytes and names are
// returned to the caller to write wherever the output lives.
package imaging
