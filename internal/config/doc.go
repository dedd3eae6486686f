// Package config resolves the settings of one generator run.
//
// A Config starts from Default and is layered with the options of the
// declaration file, then ENUMEVENT_* environment variables, then the
// command-line flags the user actually set:
//
//	flag > env > declaration file > default
package config
