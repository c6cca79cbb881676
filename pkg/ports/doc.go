/*
Package ports defines the driven ports (interfaces) of arbor.

These interfaces decouple the editor and the CLI from concrete storage,
so that application preferences can live in a local YAML file, in memory
for tests, or in a shared Redis hash.

# Key Interfaces

  - PreferenceStore: string key/value storage for application settings.
*/
package ports
