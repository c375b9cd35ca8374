package main

import (
	"fmt"
	"io"
	"os"

	"waffer/internal/util"

	"github.com/pkg/errors"
	"github.com/protomaps/go-pmtiles/pmtiles"
)

// coverage is what the offers map needs from a basemap archive.
type coverage struct {
	Lat        float64
	Lon        float64
	MinMaxZoom int
}

func runValidate(file string, want coverage) error {
	fmt.Printf("Validating basemap archive: %s\n", file)

	f, err := os.Open(file)
	if err != nil {
		return errors.Wrap(err, "failed to open archive")
	}
	defer f.Close()

	header, err := readHeader(f)
	if err != nil {
		return err
	}

	if err := checkHeader(header, want); err != nil {
		return err
	}

	info, err := f.Stat()
	if err != nil {
		return errors.Wrap(err, "failed to stat archive")
	}

	fmt.Printf("  Size:       %s\n", util.FormatBytes(info.Size()))
	fmt.Printf("  Zoom:       %d-%d\n", header.MinZoom, header.MaxZoom)
	fmt.Printf("  Bounds:     %.4f,%.4f %.4f,%.4f\n",
		e7(header.MinLonE7), e7(header.MinLatE7), e7(header.MaxLonE7), e7(header.MaxLatE7))
	fmt.Printf("  Tiles:      %d\n", header.AddressedTilesCount)
	fmt.Println("\nValidation passed!")

	return nil
}

func readHeader(r io.Reader) (pmtiles.HeaderV3, error) {
	buf := make([]byte, pmtiles.HeaderV3LenBytes)
	if _, err := io.ReadFull(r, buf); err != nil {
		return pmtiles.HeaderV3{}, errors.Wrap(err, "failed to read archive header")
	}

	header, err := pmtiles.DeserializeHeader(buf)
	if err != nil {
		return pmtiles.HeaderV3{}, errors.Wrap(err, "invalid PMTiles header")
	}

	return header, nil
}

// checkHeader rejects archives that are not vector tiles, stop short of
// marker zoom levels or do not cover the default map center.
func checkHeader(header pmtiles.HeaderV3, want coverage) error {
	if header.TileType != pmtiles.Mvt {
		return errors.Errorf("archive tile type must be mvt, got %d", header.TileType)
	}

	if int(header.MaxZoom) < want.MinMaxZoom {
		return errors.Errorf("archive max zoom %d is below %d", header.MaxZoom, want.MinMaxZoom)
	}

	if want.Lon < e7(header.MinLonE7) || want.Lon > e7(header.MaxLonE7) ||
		want.Lat < e7(header.MinLatE7) || want.Lat > e7(header.MaxLatE7) {
		return errors.Errorf("archive bounds do not cover %.4f,%.4f", want.Lat, want.Lon)
	}

	return nil
}

func e7(v int32) float64 {
	return float64(v) / 1e7
}
