// Command xmpgen renders XMP metadata packets from YAML job files.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/geoknoesis/xmp-go/internal/sidecar"
)

// Build-time variables set via ldflags
var (
	version = "dev"
	commit  = "unknown"
)

var rootCmd = &cobra.Command{
	Use:          "xmpgen",
	Short:        "Generate XMP metadata packets",
	Long:         "xmpgen renders XMP sidecar packets from YAML job files.",
	SilenceUsage: true,
}

var (
	jobPath  string
	outPath  string
	asJSONLD bool
	intoPath string
)

var writeCmd = &cobra.Command{
	Use:   "write",
	Short: "Render a job file into an XMP packet",
	RunE: func(cmd *cobra.Command, args []string) error {
		var out []byte
		switch {
		case asJSONLD:
			job, err := sidecar.Load(jobPath)
			if err != nil {
				return err
			}
			w := job.Writer()
			if err := sidecar.Apply(job, w); err != nil {
				return err
			}
			doc, err := w.JSONLD()
			if err != nil {
				return err
			}
			out, err = json.MarshalIndent(doc, "", "  ")
			if err != nil {
				return err
			}
			out = append(out, '\n')
		case intoPath != "":
			existing, err := os.ReadFile(intoPath)
			if err != nil {
				return err
			}
			job, err := sidecar.Load(jobPath)
			if err != nil {
				return err
			}
			w := job.Writer()
			if err := sidecar.Apply(job, w); err != nil {
				return err
			}
			out, err = w.FinishInto(existing)
			if err != nil {
				return err
			}
		default:
			var err error
			out, err = sidecar.Render(jobPath)
			if err != nil {
				return err
			}
		}
		if outPath == "" || outPath == "-" {
			_, err := os.Stdout.Write(out)
			return err
		}
		return os.WriteFile(outPath, out, 0644)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xmpgen %s (%s) %s/%s\n", version, commit, runtime.GOOS, runtime.GOARCH)
	},
}

func init() {
	writeCmd.Flags().StringVarP(&jobPath, "config", "c", "job.yaml", "Job file to render")
	writeCmd.Flags().StringVarP(&outPath, "output", "o", "-", "Output file, - for stdout")
	writeCmd.Flags().BoolVar(&asJSONLD, "jsonld", false, "Emit the JSON-LD form instead of an XMP packet")
	writeCmd.Flags().StringVar(&intoPath, "into", "", "Replace the xpacket region of this file, preserving its length")
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
