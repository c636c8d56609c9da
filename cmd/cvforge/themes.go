// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/cvforge/pkg/types"
)

var themesCmd = &cobra.Command{
	Use:   "themes",
	Short: "List the recognized CV themes",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range types.Themes() {
			if t == types.DefaultTheme {
				fmt.Printf("%s (default)\n", t)
				continue
			}
			fmt.Println(t)
		}
	},
}

func init() {
	rootCmd.AddCommand(themesCmd)
}
