// Package domain contains the core domain model for colorselect.
//
// The domain is presentation- and transport-agnostic: it does not depend on terminal styling,
// net/http, YAML parsing, or the filesystem. Adapters map into/from these types.
package domain
