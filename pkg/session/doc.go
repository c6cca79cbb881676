/*
Package session holds the document being edited.

An Editor owns one tree together with the file it came from and a dirty flag.
All access is serialized, so a single Editor can be shared by the CLI, the
HTTP server and the MCP server. Mutations go through domain operations and
replace the whole tree, so a Snapshot is never affected by later edits.
*/
package session
