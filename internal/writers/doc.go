// Package writers turns results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, styled tables, JSON/JSONL/YAML).
//   - Core packages stay domain-only; the app only feeds channels.
//   - JSON/JSONL/YAML go through pkg/api (v1) for a stable wire format.
package writers
