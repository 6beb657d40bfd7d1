// Package client implements the go-bluebook command-line application.
//
// [App] dispatches subcommands (derive, analyze, recover, hypotheses, list,
// fetch, fetch-all) to the client services and prints their results as
// indented JSON. Commands that talk to the Bluebook API log in lazily with
// the configured account.
package client
