package main

import (
	"os"

	"github.com/SeanWeng2Cm/YUASA-battery-aging-15-inrush/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
