// Package render turns sampled complex fields into domain-coloring
// images: phase becomes hue, magnitude becomes lightness. Undefined
// points (the NaN sentinel) become fully transparent pixels, so
// divergence masks show up as clean gaps instead of artifacts.
package render
