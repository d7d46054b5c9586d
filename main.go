package main

import (
	"os"

	"github.com/arya-analytics/enroll/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
