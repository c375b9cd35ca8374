package main

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"waffer/internal/util"

	"github.com/pkg/errors"
)

const downloadTimeout = 30 * time.Minute

func runDownload(ctx context.Context, source, outputDir string) error {
	filename, err := archiveFilename(source)
	if err != nil {
		return err
	}

	fmt.Printf("Source: %s\n", source)
	fmt.Printf("Output: %s\n", filepath.Join(outputDir, filename))
	fmt.Println()

	outputPath, err := downloadFile(ctx, source, outputDir, filename)
	if err != nil {
		return errors.Wrap(err, "failed to download archive")
	}

	checksum, size, err := util.FileChecksum(outputPath)
	if err != nil {
		return err
	}
	fmt.Printf("Size:   %s\n", util.FormatBytes(size))
	fmt.Printf("SHA256: %s\n", checksum)
	fmt.Printf("\nDownload completed successfully!\n")

	return nil
}

// archiveFilename returns the last path element of a .pmtiles URL.
func archiveFilename(source string) (string, error) {
	u, err := url.Parse(source)
	if err != nil {
		return "", errors.Wrap(err, "invalid archive url")
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", errors.Errorf("unsupported scheme %q", u.Scheme)
	}

	name := path.Base(u.Path)
	if !strings.HasSuffix(name, ".pmtiles") {
		return "", errors.Errorf("archive url must end with .pmtiles: %s", source)
	}

	return name, nil
}

// downloadFile fetches source into outputDir, resuming a partial file when one exists.
func downloadFile(ctx context.Context, source, outputDir, filename string) (string, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", errors.Wrap(err, "failed to create output directory")
	}

	outputPath := filepath.Join(outputDir, filename)

	var existingSize int64
	if info, err := os.Stat(outputPath); err == nil {
		existingSize = info.Size()
		fmt.Printf("Resuming download from %s\n", util.FormatBytes(existingSize))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return "", errors.Wrap(err, "failed to create request")
	}
	if existingSize > 0 {
		req.Header.Set("Range", fmt.Sprintf("bytes=%d-", existingSize))
	}

	client := &http.Client{Timeout: downloadTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return "", errors.Wrap(err, "failed to make request")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusRequestedRangeNotSatisfiable {
		fmt.Println("File is already complete")

		return outputPath, nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		return "", errors.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var file *os.File
	if existingSize > 0 && resp.StatusCode == http.StatusPartialContent {
		file, err = os.OpenFile(outputPath, os.O_APPEND|os.O_WRONLY, 0o644)
	} else {
		file, err = os.Create(outputPath)
		existingSize = 0
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to open output file")
	}
	defer file.Close()

	total := int64(-1)
	if resp.ContentLength > 0 {
		total = existingSize + resp.ContentLength
	}

	progress := &downloadProgress{
		out:        os.Stdout,
		total:      total,
		downloaded: existingSize,
		started:    time.Now(),
	}

	if _, err := io.Copy(io.MultiWriter(file, progress), resp.Body); err != nil {
		return "", errors.Wrap(err, "failed to write archive")
	}
	fmt.Println()

	return outputPath, nil
}

// downloadProgress renders a single-line progress bar.
type downloadProgress struct {
	out        io.Writer
	total      int64
	downloaded int64
	started    time.Time
}

func (p *downloadProgress) Write(b []byte) (int, error) {
	p.downloaded += int64(len(b))
	p.render()

	return len(b), nil
}

func (p *downloadProgress) render() {
	if p.total <= 0 {
		fmt.Fprintf(p.out, "\rDownloaded: %s", util.FormatBytes(p.downloaded))

		return
	}

	const width = 50
	ratio := min(float64(p.downloaded)/float64(p.total), 1)
	filled := int(ratio * width)
	bar := strings.Repeat("=", filled) + strings.Repeat(" ", width-filled)

	elapsed := time.Since(p.started).Seconds()
	speed := float64(p.downloaded) / max(elapsed, 0.001)
	eta := time.Duration(float64(p.total-p.downloaded)/max(speed, 1)) * time.Second

	fmt.Fprintf(p.out, "\r[%s] %d%% | %s/%s | %s/s | ETA: %s",
		bar,
		int(ratio*100),
		util.FormatBytes(p.downloaded),
		util.FormatBytes(p.total),
		util.FormatBytes(int64(speed)),
		util.FormatDuration(eta),
	)
}
