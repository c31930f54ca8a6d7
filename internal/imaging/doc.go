// Package imaging turns captured pixels into the bytes hostctl hands out:
// BGRA conversion for GDI buffers, downscaling, coordinate grid overlays and
// PNG/JPEG encoding.
package imaging
