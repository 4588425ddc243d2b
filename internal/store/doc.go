// Package store defines interfaces for data persistence operations: the
// user store backing the auth service and the case store backing the case
// service. These interfaces abstract the underlying storage mechanism so
// handlers remain independent of the document and relational databases
// behind them, and declare the sentinel errors implementations map their
// driver failures onto.
package store
