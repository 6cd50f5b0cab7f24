// Package document loads the declaration of the CSS utility-class generation
// tool (a tailwind.config.* file) into an immutable [models.ConfigDocument].
//
// Three on-disk formats are understood:
//   - JSON (.json), decoded with encoding/json;
//   - YAML (.yaml, .yml), decoded with gopkg.in/yaml.v3;
//   - JS modules (.js, .cjs, .mjs) whose default export is a plain object
//     literal. The literal is normalised into a YAML flow mapping and decoded
//     with the YAML decoder.
//
// Every shape violation is reported as a [*MalformedConfigError] that names
// the offending key and matches [ErrMalformedConfig] via errors.Is.
package document
