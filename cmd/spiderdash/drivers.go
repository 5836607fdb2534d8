package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/spider-dash/internal/registry"
)

var driversCmd = &cobra.Command{
	Use:   "drivers",
	Short: "List window drivers",
	Long: `Shows the window drivers compiled into this binary.
Build with -tags raylib to include the raylib driver.`,
	Run: runDrivers,
}

func runDrivers(_ *cobra.Command, _ []string) {
	drivers := registry.List()

	if len(drivers) == 0 {
		fmt.Println("No drivers available.")
		return
	}

	fmt.Println("Available drivers:")
	fmt.Println()

	maxNameLen := 4 // "Name" header
	for _, d := range drivers {
		if len(d.Name) > maxNameLen {
			maxNameLen = len(d.Name)
		}
	}

	fmt.Printf("  %-*s  %s\n", maxNameLen, "Name", "Description")
	fmt.Printf("  %-*s  %s\n", maxNameLen, "----", "-----------")

	for _, d := range drivers {
		fmt.Printf("  %-*s  %s\n", maxNameLen, d.Name, d.Description)
	}

	fmt.Println()
	fmt.Println("Run 'spiderdash play --driver <name>' to use one.")
}
