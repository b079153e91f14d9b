package filesystem

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"

	"showcase/internal/core/domain/textproc"
	"showcase/internal/pkg/errs"
)

// openSource opens path for reading and maps a missing file to ObjectNotFoundError.
func openSource(path string) (*os.File, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errs.NewObjectNotFoundErrorWithCause("file", path, err)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

// createDestination creates or truncates path.
func createDestination(path string) (*os.File, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", path, err)
	}
	return f, nil
}

// ConvertFile writes every line of in, transformed by processor, to out. Each
// output line ends with '\n' regardless of the input line ending. The context
// is checked between lines.
func ConvertFile(ctx context.Context, in, out string, processor textproc.Processor) error {
	return streamLines(ctx, in, out, processor)
}

// BufferedCopy copies src to dst one line at a time through buffered reader
// and writer, preserving line breaks as '\n'.
func BufferedCopy(ctx context.Context, src, dst string) error {
	return streamLines(ctx, src, dst, textproc.Identity())
}

func streamLines(ctx context.Context, in, out string, processor textproc.Processor) (err error) {
	source, err := openSource(in)
	if err != nil {
		return err
	}
	defer source.Close()

	dest, err := createDestination(out)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := dest.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", out, closeErr)
		}
	}()

	reader := bufio.NewReader(source)
	writer := bufio.NewWriter(dest)

	for {
		if err = ctx.Err(); err != nil {
			return err
		}
		line, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return fmt.Errorf("read %s: %w", in, readErr)
		}
		if line == "" && readErr != nil {
			break
		}
		if _, err = writer.WriteString(processor.Process(trimLineEnding(line))); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		if err = writer.WriteByte('\n'); err != nil {
			return fmt.Errorf("write %s: %w", out, err)
		}
		if readErr != nil {
			break
		}
	}

	if err = writer.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", out, err)
	}
	return nil
}

// trimLineEnding drops a trailing "\n" or "\r\n". Lines have no length limit.
func trimLineEnding(line string) string {
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r")
}

// BulkCopy duplicates src into dst without interpreting its contents and
// returns the number of bytes copied. Copying between two *os.File values lets
// the runtime use copy_file_range or sendfile where the platform offers them.
func BulkCopy(src, dst string) (written int64, err error) {
	source, err := openSource(src)
	if err != nil {
		return 0, err
	}
	defer source.Close()

	dest, err := createDestination(dst)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := dest.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close %s: %w", dst, closeErr)
		}
	}()

	written, err = io.Copy(dest, source)
	if err != nil {
		return written, fmt.Errorf("copy %s to %s: %w", src, dst, err)
	}
	return written, nil
}
