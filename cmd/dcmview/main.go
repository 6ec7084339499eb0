// Command dcmview prints the metadata of a DICOM file as readable text,
// hiding binary payloads such as pixel or waveform data.
//
// Usage:
//
//	dcmview <dicomfile>
//
// Exit code 0 on success, 1 when the file cannot be read.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caio-sobreiro/dcmview/logger"
	"github.com/caio-sobreiro/dcmview/view"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	log := logger.New(logger.Config{Output: stderr})

	if len(args) != 1 {
		fmt.Fprintln(stderr, "Usage: dcmview <dicomfile>")
		return 1
	}
	path := args[0]

	start := time.Now()
	ds, err := view.ReadFile(path)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Debug().
		Str("file", path).
		Int("elements", len(ds.Elements)).
		Dur("elapsed", time.Since(start)).
		Msg("parsed DICOM file")

	if err := view.Print(stdout, ds, view.WithLogger(log)); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
