// Package graphql provides the GraphQL transport layer for the feedback
// hub. It defines the schema, resolvers and error handling for users,
// events and the live feedback feed. Scalar types (UUID, DateTime) and
// GraphQL types are automatically generated via gqlgen from the schema
// file.
package graphql

//go:generate go run github.com/99designs/gqlgen generate
