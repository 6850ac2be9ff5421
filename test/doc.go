// Package test runs the api end to end against dockerized postgres and redis.
//
//	go test -tags integration_test ./test/...
package test
