package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/mgpai22/srttool/internal/subtitle"
	"github.com/spf13/cobra"
)

const stdinName = "-"

var shiftCmd = &cobra.Command{
	Use:   "shift [subtitle_file...]",
	Short: "Shift every subtitle block by a fixed offset",
	Long: `Shift the start and end time of every block by a fixed offset and write
the result as one SRT track with blocks renumbered from 1.

Offsets use the subtitle time format with an optional sign. Negative
offsets never move a time below 00:00:00,000. The legacy "n" prefix is
accepted as a synonym for "-".

With no files, or with "-", input is read from stdin. When several files
are given they are concatenated in order. A file that fails to parse is
reported and skipped unless --fail-fast is set.

Examples:
  srttool shift movie.srt --offset 00:00:02,500
  srttool shift movie.srt --offset=-00:00:01,200 -o fixed.srt
  srttool shift part1.srt part2.srt -s 00:00:00,000 -o full.srt
  cat movie.srt | srttool shift -e windows-1252 -s n00:00:03,000`,
	Args: cobra.ArbitraryArgs,
	RunE: runShift,
}

func init() {
	rootCmd.AddCommand(shiftCmd)

	shiftCmd.Flags().
		StringP("offset", "s", "", "Time offset to add, e.g. 00:00:02,500 or -00:00:02,500")
	shiftCmd.Flags().
		StringP("encoding", "e", "auto", "Input charset (auto, utf-8, or an IANA name such as windows-1252)")
	shiftCmd.Flags().
		Bool("fail-fast", false, "Stop at the first file that fails to parse")
}

type shiftOptions struct {
	Inputs   []string
	Offset   subtitle.Offset
	Encoding string
	FailFast bool
}

func runShift(cmd *cobra.Command, args []string) error {
	offsetStr := cfg.Offset
	if cmd.Flags().Changed("offset") {
		offsetStr, _ = cmd.Flags().GetString("offset")
	}
	encoding := cfg.Encoding
	if cmd.Flags().Changed("encoding") {
		encoding, _ = cmd.Flags().GetString("encoding")
	}
	failFast := cfg.FailFast
	if cmd.Flags().Changed("fail-fast") {
		failFast, _ = cmd.Flags().GetBool("fail-fast")
	}
	outputPath, _ := cmd.Flags().GetString("output")

	offset, err := subtitle.ParseOffset(offsetStr)
	if err != nil {
		return err
	}

	inputs := args
	if len(inputs) == 0 {
		inputs = []string{stdinName}
	}

	logger.Infow("Shifting subtitles",
		"inputs", len(inputs),
		"offset", offset.String(),
		"encoding", encoding,
		"output", outputPath,
	)

	out := cmd.OutOrStdout()
	var outFile io.Closer
	if outputPath != "" {
		if err := checkOutputPath(outputPath, inputs); err != nil {
			return err
		}
		f, err := subtitle.CreateOutput(outputPath)
		if err != nil {
			return err
		}
		outFile = f
		out = f
	}

	opts := shiftOptions{
		Inputs:   inputs,
		Offset:   offset,
		Encoding: encoding,
		FailFast: failFast,
	}
	written, err := shiftInputs(opts, cmd.InOrStdin(), out, cmd.ErrOrStderr())
	if outFile != nil {
		err = closeOutput(outFile, err)
	}
	if err != nil {
		return err
	}

	if outputPath != "" {
		absOutput, _ := filepath.Abs(outputPath)
		logger.Infow("Subtitles written",
			"output", absOutput,
			"blocks", written,
		)
	}
	return nil
}

// checkOutputPath refuses an output that names one of the inputs, since
// creating it would truncate that input before it is read.
func checkOutputPath(outputPath string, inputs []string) error {
	absOutput, err := filepath.Abs(outputPath)
	if err != nil {
		return fmt.Errorf("failed to resolve output path: %w", err)
	}
	outInfo, statErr := os.Stat(absOutput)

	for _, in := range inputs {
		if in == stdinName {
			continue
		}
		absInput, err := filepath.Abs(in)
		if err != nil {
			return fmt.Errorf("failed to resolve input path: %w", err)
		}
		same := absInput == absOutput
		if !same && statErr == nil {
			if inInfo, err := os.Stat(absInput); err == nil {
				same = os.SameFile(inInfo, outInfo)
			}
		}
		if same {
			return fmt.Errorf("output file %s is also an input; write to a different file", outputPath)
		}
	}
	return nil
}

// closeOutput closes the output file and reports a close failure unless
// an earlier error is already being returned.
func closeOutput(c io.Closer, err error) error {
	if cerr := c.Close(); cerr != nil && err == nil {
		return fmt.Errorf("failed to close output file: %w", cerr)
	}
	return err
}

// shiftInputs decodes every input in order, shifts each block and writes
// it to out. Per-input diagnostics and line summaries go to diag. It
// returns the number of blocks written.
func shiftInputs(opts shiftOptions, stdin io.Reader, out, diag io.Writer) (int, error) {
	enc := subtitle.NewEncoder(out)
	failed := 0

	for _, path := range opts.Inputs {
		if err := shiftInput(path, opts, stdin, enc, diag); err != nil {
			var werr *writeError
			if errors.As(err, &werr) {
				return enc.Count(), err
			}
			fmt.Fprintf(diag, "ERROR: %s\n", describeError(displayName(path), err))
			failed++
			if opts.FailFast {
				break
			}
		}
	}

	if err := enc.Flush(); err != nil {
		return enc.Count(), fmt.Errorf("failed to write output: %w", err)
	}

	logger.Infow("Shift complete",
		"blocks", enc.Count(),
		"failed_inputs", failed,
	)

	if failed > 0 {
		return enc.Count(), fmt.Errorf("%d of %d inputs failed", failed, len(opts.Inputs))
	}
	return enc.Count(), nil
}

// output failures abort the whole run, unlike parse failures
type writeError struct {
	err error
}

func (e *writeError) Error() string { return e.err.Error() }
func (e *writeError) Unwrap() error { return e.err }

func shiftInput(
	path string,
	opts shiftOptions,
	stdin io.Reader,
	enc *subtitle.Encoder,
	diag io.Writer,
) error {
	dec, charset, closeFn, err := openInput(path, opts.Encoding, stdin)
	if err != nil {
		return err
	}
	defer closeFn()

	name := displayName(path)
	logger.Debugw("Reading input",
		"path", name,
		"charset", charset,
		"shift", opts.Offset.Duration(),
	)

	var (
		decodeErr error
		prev      subtitle.StartEnd
		seen      bool
	)
	for b, err := range dec.Blocks() {
		if err != nil {
			decodeErr = err
			break
		}
		if b.Range.End.Compare(b.Range.Start) < 0 {
			logger.Warnw("Block ends before it starts",
				"path", name,
				"line", dec.Line(),
				"range", b.Range.String(),
			)
		}
		if seen && b.Range.Compare(prev) < 0 {
			logger.Debugw("Block starts before the previous one",
				"path", name,
				"line", dec.Line(),
				"start_ms", b.Range.Start.Duration().Milliseconds(),
			)
		}
		prev, seen = b.Range, true

		if err := enc.Encode(b.Shift(opts.Offset)); err != nil {
			return &writeError{err: err}
		}
		logger.Debugw("Shifted block",
			"path", name,
			"block", enc.Count(),
			"range", b.Range.String(),
		)
	}

	fmt.Fprintf(diag, "from %q %d lines parsed\n", name, dec.Line())
	return decodeErr
}

func openInput(
	path, encoding string,
	stdin io.Reader,
) (*subtitle.Decoder, string, func(), error) {
	if path == stdinName {
		r, charset, err := subtitle.NewUTF8Reader(stdin, encoding)
		if err != nil {
			return nil, "", nil, err
		}
		return subtitle.NewDecoder(subtitle.ScanLines(r)), charset, func() {}, nil
	}

	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, "", nil, fmt.Errorf("%s is a directory", path)
	}
	in, err := subtitle.Open(path, encoding)
	if err != nil {
		return nil, "", nil, err
	}
	return in.Decoder, in.Charset, func() { _ = in.Close() }, nil
}

func displayName(path string) string {
	if path == stdinName {
		return "<stdin>"
	}
	return path
}
