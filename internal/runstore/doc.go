// Package runstore persists a history of assembly runs in a SQLite database
// under the work directory. A file lock serializes writers so concurrent
// invocations fail fast instead of corrupting the history.
package runstore
