// Package doclink implements the deep-link resolution and bookmark
// recovery core of a local documentation browser. It parses portable
// link identifiers, locates their targets across project/collection/
// document/anchor granularity, and degrades through a fixed fallback
// chain when a target is missing, so broken links always surface a
// clear recovery path instead of failing silently.
//
// This package contains domain types and interfaces following Ben
// Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., sqlite/)
// or their concern (resolve/).
package doclink
