// Package api holds the OpenAPI document of the delivery scheduler.
package api

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen -generate types,server,spec -package servers -o ../internal/generated/servers/api.gen.go openapi.yml
