package sbcheck

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	termutil "github.com/andrew-d/go-termutil"
)

const keyPrompt = "Please insert your categorization key below.\n"

// LoadKey returns the API key stored at path. If there is no file yet, the
// key is read from in (first whitespace delimited token) and written to path
// so later runs can reuse it. The prompt is only shown when in is a terminal.
func LoadKey(path string, in io.Reader, prompt io.Writer) (string, error) {

	key, err := readKey(path)
	if err == nil {
		return key, nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", err
	}

	if isTerminal(in) && prompt != nil {
		fmt.Fprint(prompt, keyPrompt)
	}

	sc := bufio.NewScanner(in)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", fmt.Errorf("%w: reading key from input: %w", ErrKeyFile, err)
		}
		return "", fmt.Errorf("%w: no key supplied", ErrKeyFile)
	}
	key = sc.Text()

	if err := writeKey(path, key); err != nil {
		return "", err
	}

	return key, nil
}

func readKey(path string) (string, error) {

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", err
		}
		return "", fmt.Errorf("%w %s: %w", ErrKeyFile, path, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("%w %s: %w", ErrKeyFile, path, err)
	}

	key := strings.TrimRight(line, "\r\n")
	if key == "" {
		return "", fmt.Errorf("%w %s: file is empty", ErrKeyFile, path)
	}

	return key, nil
}

func writeKey(path, key string) error {

	out, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("%w %s: %w", ErrKeyFile, path, err)
	}

	if _, err := io.WriteString(out, key); err != nil {
		out.Close()
		return fmt.Errorf("%w %s: %w", ErrKeyFile, path, err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("%w %s: %w", ErrKeyFile, path, err)
	}

	return nil
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && termutil.Isatty(f.Fd())
}
