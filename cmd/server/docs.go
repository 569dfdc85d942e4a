//go:generate swag init -g docs.go -o ../../docs --parseInternal --dir .,../../internal/api/handler

package main

// @title Storefront API
// @version 1.0
// @description Customer registration, user administration and product catalog behind HTTP Basic authentication.
// @BasePath /api
// @securityDefinitions.basic BasicAuth
