// Package postgres provides the PostgreSQL-backed implementation of the case
// storage interface defined in the internal/store package, along with the
// startup connection retry loop and schema bootstrap helpers the case
// service needs. It handles query execution and the mapping between domain
// entities and database rows, including NULL round-tripping for the
// free-form case fields.
package postgres
