// Command textcluster groups short text documents with K-means.
//
//	textcluster run                                   # cluster the built-in demo corpus
//	textcluster run --input jobs.csv.zst --column 1 --skip-header
//	textcluster run --source s3 --bucket corpora --prefix jobs/ --output reports/jobs.json.zst
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "textcluster",
	Short:         "Cluster text documents with K-means over bag-of-words vectors",
	SilenceUsage:  true,
	SilenceErrors: false,
}

func main() {
	rootCmd.AddCommand(newRunCmd())
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
