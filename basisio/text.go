// SPDX-License-Identifier: MIT

package basisio

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Prompt texts of the interactive dialogue.
const (
	PromptDimension = "Enter the dimension of the basis: "
	PromptVector    = "Enter basis vector %d: "
	PromptThreshold = "Enter the threshold: "
)

// lineReader yields input lines, optionally printing a prompt first.
type lineReader struct {
	sc      *bufio.Scanner
	prompts io.Writer // nil for non-interactive
}

// next returns the next meaningful line. In non-interactive mode blank and
// '#' lines are skipped.
func (lr *lineReader) next(prompt string) (string, error) {
	if lr.prompts != nil {
		if _, err := io.WriteString(lr.prompts, prompt); err != nil {
			return "", err
		}
	}
	for lr.sc.Scan() {
		line := strings.TrimSpace(lr.sc.Text())
		if lr.prompts == nil && (line == "" || strings.HasPrefix(line, "#")) {
			continue
		}

		return line, nil
	}
	if err := lr.sc.Err(); err != nil {
		return "", err
	}

	return "", fmt.Errorf("unexpected end of input: %w", ErrInput)
}

// ReadText reads: dimension line, n row lines, threshold line.
func ReadText(r io.Reader) (*Input, error) {
	in, err := read(&lineReader{sc: bufio.NewScanner(r)})
	if err != nil {
		return nil, fmt.Errorf("ReadText: %w", err)
	}

	return in, nil
}

// Prompt runs the interactive dialogue, writing prompts to out.
func Prompt(r io.Reader, out io.Writer) (*Input, error) {
	in, err := read(&lineReader{sc: bufio.NewScanner(r), prompts: out})
	if err != nil {
		return nil, fmt.Errorf("Prompt: %w", err)
	}

	return in, nil
}

func read(lr *lineReader) (*Input, error) {
	line, err := lr.next(PromptDimension)
	if err != nil {
		return nil, err
	}
	n, err := parseDimension(line)
	if err != nil {
		return nil, err
	}

	basis := make([][]int64, n)
	for i := 0; i < n; i++ {
		if line, err = lr.next(fmt.Sprintf(PromptVector, i+1)); err != nil {
			return nil, err
		}
		if basis[i], err = parseRow(line, i, n); err != nil {
			return nil, err
		}
	}

	if line, err = lr.next(PromptThreshold); err != nil {
		return nil, err
	}
	delta, err := ParseDelta(line)
	if err != nil {
		return nil, err
	}

	return &Input{Basis: basis, Delta: delta}, nil
}

// WriteText writes one space-separated row per line.
func WriteText(w io.Writer, basis [][]int64) error {
	bw := bufio.NewWriter(w)
	for _, row := range basis {
		for j, x := range row {
			if j > 0 {
				_ = bw.WriteByte(' ')
			}
			_, _ = bw.WriteString(strconv.FormatInt(x, 10))
		}
		_ = bw.WriteByte('\n')
	}

	return bw.Flush()
}
