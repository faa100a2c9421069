// Package driver runs the front end over source units: lexing, optional
// grouping, the token cache, timings and tracing.
package driver
