// Package settings provides persistent key/value storage for meshnode
// instances.
//
// Settings are addressed by a 16-bit Key; each key holds an ordered list of
// values so that multi-valued records (such as child tables) can be stored
// alongside single-valued ones (datasets, network info). Three backends
// implement Store:
//
//   - MemoryStore keeps everything in memory (tests, volatile devices).
//   - FileStore keeps a CBOR snapshot of the table in one file and rewrites
//     it atomically after every mutation.
//   - SQLiteStore keeps one row per value in a SQLite database.
//
// Every backend must be initialized with Init before use.
package settings
