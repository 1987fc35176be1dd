package main

import (
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
)

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// parsePastedNames accepts either a names document or one name per line.
func parsePastedNames(text string) []string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	if strings.HasPrefix(trimmed, "{") {
		if names, err := decodeNames(strings.NewReader(trimmed)); err == nil {
			return names
		}
	}

	var names []string
	for _, line := range strings.Split(trimmed, "\n") {
		name := strings.TrimSpace(strings.TrimRight(line, "\r"))
		name = strings.TrimSuffix(name, nameSeparator)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

func copyToClipboard(lines []string) error {
	return clipboard.WriteAll(strings.Join(lines, "\n"))
}
