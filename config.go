package main

import (
	"bufio"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	NamesSource     string
	Variant         Variant
	Seed            int64
	FPS             int
	ParticleSize    float64
	DotSize         float64
	ExportDirectory string
	Header          string
}

func defaultConfig() *Config {
	return &Config{
		NamesSource:  "names.json",
		Variant:      VariantNameField,
		FPS:          defaultFPS,
		ParticleSize: defaultParticle,
		DotSize:      defaultDotSize,
		Header:       DefaultContent().NameHeader,
	}
}

// loadConfig reads ~/.particlerc on top of the defaults. A missing or
// unreadable file leaves the defaults in place.
func loadConfig() *Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return defaultConfig()
	}

	file, err := os.Open(filepath.Join(homeDir, ".particlerc"))
	if err != nil {
		return defaultConfig()
	}
	defer file.Close()

	return parseConfig(file, homeDir)
}

func parseConfig(r io.Reader, homeDir string) *Config {
	config := defaultConfig()

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}

		key := strings.TrimSpace(parts[0])
		value := strings.TrimSpace(parts[1])

		switch strings.ToLower(key) {
		case "names", "names_source", "namesource":
			if !strings.Contains(value, "://") {
				value = expandPath(value, homeDir)
			}
			config.NamesSource = value
		case "variant":
			if v, ok := parseVariant(value); ok {
				config.Variant = v
			}
		case "seed":
			if n, err := strconv.ParseInt(value, 10, 64); err == nil {
				config.Seed = n
			}
		case "fps":
			if n, err := strconv.Atoi(value); err == nil && n > 0 {
				config.FPS = n
			}
		case "particlesize", "particle_size":
			if n, err := strconv.ParseFloat(value, 64); err == nil && n > 0 {
				config.ParticleSize = n
			}
		case "dotsize", "dot_size":
			if n, err := strconv.ParseFloat(value, 64); err == nil && n > 0 {
				config.DotSize = n
			}
		case "exportdirectory", "export_directory", "exportdir":
			config.ExportDirectory = expandPath(value, homeDir)
		case "header":
			config.Header = value
		}
	}

	return config
}

func expandPath(value, homeDir string) string {
	if strings.HasPrefix(value, "~") && homeDir != "" {
		value = filepath.Join(homeDir, strings.TrimPrefix(value, "~"))
	}
	if !filepath.IsAbs(value) {
		if absPath, err := filepath.Abs(value); err == nil {
			value = absPath
		}
	}
	return value
}

func parseVariant(s string) (Variant, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "names", "namefield", "name_field", "field":
		return VariantNameField, true
	case "shatter", "text", "statement":
		return VariantShatter, true
	}
	return VariantNameField, false
}

func (c *Config) GetExportPath(filename string) (string, error) {
	if c.ExportDirectory == "" {
		return filename, nil
	}
	if err := os.MkdirAll(c.ExportDirectory, 0755); err != nil {
		return "", err
	}
	return filepath.Join(c.ExportDirectory, filename), nil
}
