//go:build tools
// +build tools

package tools

// Tool dependencies tracked in go.mod. Nothing here is imported by the service itself.
//
//   golangci-lint: go run github.com/golangci/golangci-lint/cmd/golangci-lint run
//   goose:         go run github.com/pressly/goose/v3/cmd/goose -dir internal/database/migrations create NAME sql
//   swag:          go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go
//   mockery:       go run github.com/vektra/mockery/v2 (regenerates mocks/)
//   sqlc:          go run github.com/sqlc-dev/sqlc/cmd/sqlc generate (regenerates internal/database/generated)

import (
	_ "github.com/golangci/golangci-lint/cmd/golangci-lint"
	_ "github.com/pressly/goose/v3/cmd/goose"
	_ "github.com/sqlc-dev/sqlc/cmd/sqlc"
	_ "github.com/swaggo/swag/cmd/swag"
	_ "github.com/vektra/mockery/v2"
)
