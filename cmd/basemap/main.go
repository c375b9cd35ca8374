package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - download: fetch a PMTiles basemap archive
// - validate: check an archive can serve the offers map

func main() {
	downloadCmd := flag.NewFlagSet("download", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	downloadURL := downloadCmd.String("url", "", "Archive URL (https://.../name.pmtiles)")
	downloadOutput := downloadCmd.String("output", "./data/basemap", "Output directory for the archive")

	validateFile := validateCmd.String("file", "", "Path to the PMTiles archive")
	validateLat := validateCmd.Float64("lat", 36.8065, "Latitude the archive must cover")
	validateLon := validateCmd.Float64("lon", 10.1815, "Longitude the archive must cover")
	validateZoom := validateCmd.Int("min-max-zoom", 14, "Lowest acceptable max zoom")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	flags := basemapFlags{
		Download: downloadFlags{
			cmd:    downloadCmd,
			url:    downloadURL,
			output: downloadOutput,
		},
		Validate: validateFlags{
			cmd:  validateCmd,
			file: validateFile,
			lat:  validateLat,
			lon:  validateLon,
			zoom: validateZoom,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type basemapFlags struct {
	Download downloadFlags
	Validate validateFlags
}

type downloadFlags struct {
	cmd    *flag.FlagSet
	url    *string
	output *string
}

type validateFlags struct {
	cmd  *flag.FlagSet
	file *string
	lat  *float64
	lon  *float64
	zoom *int
}

func runSubcommand(ctx context.Context, flags *basemapFlags) error {
	switch os.Args[1] {
	case "download":
		return handleDownload(ctx, flags)
	case "validate":
		return handleValidate(flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleDownload(ctx context.Context, flags *basemapFlags) error {
	if err := flags.Download.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse download flags")
	}

	if *flags.Download.url == "" {
		return errors.New("--url flag is required for download command")
	}

	return runDownload(ctx, *flags.Download.url, *flags.Download.output)
}

func handleValidate(flags *basemapFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	if *flags.Validate.file == "" {
		return errors.New("--file flag is required for validate command")
	}

	return runValidate(*flags.Validate.file, coverage{
		Lat:        *flags.Validate.lat,
		Lon:        *flags.Validate.lon,
		MinMaxZoom: *flags.Validate.zoom,
	})
}

func printUsage() {
	fmt.Println("Usage: basemap <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  download    Download a PMTiles basemap archive")
	fmt.Println("  validate    Validate archive header and coverage")
	fmt.Println("")
	fmt.Println("Use 'basemap <command> -h' for more information about a command.")
}
