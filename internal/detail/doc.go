// Package detail composes the detail panel for one entity.
//
// Compose renders everything already cached (types, stats, height, weight,
// abilities, image) synchronously. The description comes from the species
// resource and is resolved separately by Loader.Describe, which the UI runs as
// a command. Results are tagged with the entity id; the UI discards a result
// whose id does not match the panel that is currently open.
//
// Enrichment failures never surface as errors. They are logged and the panel
// shows FallbackDescription.
package detail
