// Package domain contains the core business entities of the application:
// registered users of the auth service and the legal cases tracked by the
// case service. It is independent of any specific infrastructure or
// delivery mechanism.
package domain
