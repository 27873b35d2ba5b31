package main

import "github.com/secretaudit/secretaudit/cmd/secretaudit"

func main() {
	secretaudit.Execute()
}
