// Package manifest defines the trailer manifest document: the ordered clip
// list plus the run metadata that shaped it. The manifest is the engine's
// sole output and the contract with the downstream renderer.
package manifest
