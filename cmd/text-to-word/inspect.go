// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pdiddy/text-to-word/internal/docx"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.docx>",
	Short: "Print the default font and paragraphs of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("count", false, "print only the paragraph count")

	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	doc, err := docx.Open(args[0])
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	paras := doc.Paragraphs()
	if countOnly, _ := cmd.Flags().GetBool("count"); countOnly {
		fmt.Fprintln(out, len(paras))
		return nil
	}

	font := doc.Font()
	fmt.Fprintf(out, "Font: %s %gpt\n", font.Name, font.Size)
	fmt.Fprintf(out, "Paragraphs: %d\n", len(paras))
	for i, p := range paras {
		fmt.Fprintf(out, "%4d  %q\n", i+1, p)
	}
	return nil
}
