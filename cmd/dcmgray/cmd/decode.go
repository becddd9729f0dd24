package cmd

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httputil"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/clarivue/dicomgray/pkg/dicom"
	"github.com/clarivue/dicomgray/pkg/util"
)

// sopInstanceUIDKey is the prefix of the metadata key emitted for tag
// (0008,0018); its value seeds the correlation UUID printed after decoding.
const sopInstanceUIDKey = "(0008,0018)"

// NewDecodeCmd reads a DICOM stream from a file path, an http(s) URL, or
// stdin ("-"), and writes its metadata to stdout and/or its frames as PGM
// (P5) images to an output directory.
func NewDecodeCmd(ctx context.Context) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "decode a DICOM stream",
		Long:  "decode a DICOM stream into metadata lines and GRAY8 PGM frames",
		RunE: func(cmd *cobra.Command, args []string) error {
			uri, _ := cmd.Flags().GetString("uri")
			outDir, _ := cmd.Flags().GetString("out")
			window, _ := cmd.Flags().GetInt("window")
			level, _ := cmd.Flags().GetInt("level")
			metadata, _ := cmd.Flags().GetBool("metadata")
			verbose, _ := cmd.Flags().GetBool("verbose")

			in, closeFn, err := openSource(ctx, uri, verbose)
			if err != nil {
				return err
			}
			defer closeFn()

			var sopUID string
			var metaLines []string
			metaSink := dicom.MetadataSinkFunc(func(key, value string) {
				if strings.HasPrefix(key, sopInstanceUIDKey) {
					sopUID = value
				}
				metaLines = append(metaLines, fmt.Sprintf("%s = %s", key, value))
			})

			var frameCount int
			frameSink := dicom.FrameSinkFunc(func(f dicom.Frame) error {
				frameCount++
				return writePGM(filepath.Join(outDir, fmt.Sprintf("frame-%04d.pgm", frameCount)), f)
			})

			opts := dicom.Options{Window: window, Level: level, Metadata: metadata}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
			if err := dicom.Decode(ctx, in, opts, frameSink, metaSink); err != nil {
				return fmt.Errorf("decode: %w", err)
			}

			for _, line := range metaLines {
				fmt.Println(line)
			}
			if sopUID != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "correlation-uuid: %s\n", util.CorrelationUUID(sopUID))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "frames written: %d\n", frameCount)
			return nil
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringP("uri", "u", "-", "DICOM source: file path, http(s) URL, or - for stdin")
	pf.StringP("out", "o", "./frames", "directory to write decoded PGM frames into")
	pf.Int("window", -1, "override the file's window width (-1 = use file value)")
	pf.Int("level", -1, "override the file's window center (-1 = use file value)")
	pf.Bool("metadata", true, "emit non-image metadata elements")
	pf.Bool("verbose", false, "dump HTTP request/response when fetching a remote URI")
	return cmd
}

// openSource resolves the decode command's --uri flag into a readable
// stream plus a cleanup function, mirroring the file/http/stdin dispatch
// the rest of the module treats as an out-of-scope I/O collaborator.
func openSource(ctx context.Context, uri string, verbose bool) (io.Reader, func(), error) {
	uri = strings.TrimPrefix(uri, "file://")
	switch {
	case uri == "-" || uri == "":
		return os.Stdin, func() {}, nil

	case strings.HasPrefix(uri, "http"):
		cl := &http.Client{}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
		if err != nil {
			return nil, nil, fmt.Errorf("create request: %w", err)
		}
		resp, err := cl.Do(req)
		if err != nil {
			return nil, nil, fmt.Errorf("download: %w", err)
		}
		if verbose {
			reqDump, _ := httputil.DumpRequest(req, true)
			os.Stderr.Write(reqDump)
			resDump, _ := httputil.DumpResponse(resp, false)
			os.Stderr.Write(resDump)
		}
		return resp.Body, func() { resp.Body.Close() }, nil

	default:
		f, err := os.Open(uri)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		return f, func() { f.Close() }, nil
	}
}

// writePGM writes f as a binary PGM (P5) image: the simplest possible
// codec-free way to inspect a decoded GRAY8 frame without wiring in an
// image encoder.
func writePGM(path string, f dicom.Frame) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if _, err := fmt.Fprintf(file, "P5\n%d %d\n255\n", f.Width, f.Height); err != nil {
		return err
	}
	_, err = file.Write(f.Pixels)
	return err
}
