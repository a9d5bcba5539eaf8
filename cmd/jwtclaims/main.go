package main

import "github.com/auth0/go-jwt-claims/internal/cli"

func main() {
	cli.Execute()
}
