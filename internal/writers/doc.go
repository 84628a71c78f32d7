// Package writers turns analysis results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (text, JSON).
//   - core/ stays domain-only; internal/app stays orchestration-only.
//   - JSON goes through pkg/api (v1) for a stable wire format.
package writers
