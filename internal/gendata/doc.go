// Package gendata generates synthetic labeled record sets for exercising
// the induce and classify packages in tests, the way
// original_source/TestRecordGenerator built records for cross-verifying
// the learning algorithm against a hand-coded validator. It is internal:
// the CLI surface (spec §6) has no "generate" subcommand, so this only
// ever runs from _test.go files.
package gendata
