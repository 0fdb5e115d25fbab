// Package writers turns engine results into serialized reports.
//
// Design:
//   • Writers own all presentation knowledge (narrative text, table rows, JSON).
//   • The engine stays domain-only; the app only picks a format by name.
//   • JSON goes through pkg/api (v1) for a stable wire format.
package writers
