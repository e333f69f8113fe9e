package main

import (
	"fmt"
	"os"
)

// @title College Portal API
// @version 1.0.0
// @description College administration backend: registration, student and teacher accounts, exam tasks and results.
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
