// Package ent holds the generated event-store client. Run go generate to
// regenerate after editing the schemas.
package ent

//go:generate go run -mod=mod entgo.io/ent/cmd/ent generate ./schema
