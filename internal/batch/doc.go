// Package batch encodes many payloads concurrently and summarizes the
// outcome. Results keep input order and every item succeeds or fails on
// its own.
package batch
