package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
)

var fallbackNames = []string{
	"mohammed ramzi naim zaqqut",
	"ibrahim yasser mohammed mousa",
	"hamda shawqi diab al-awar",
	"yasser abdel rahman said shaheen",
	"mumin hussein mahmoud ishteiwi",
}

type nameList struct {
	Names *[]string `json:"names"`
}

var errNoNamesField = errors.New(`document has no "names" field`)

// LoadNames reads the name list from an http(s) URL or a file path. Any
// failure is logged and answered with the fallback list.
func LoadNames(ctx context.Context, client *http.Client, source string) []string {
	names, err := fetchNames(ctx, client, source)
	if err != nil {
		log.Printf("error loading names from %q: %v", source, err)
		return append([]string(nil), fallbackNames...)
	}
	return names
}

func fetchNames(ctx context.Context, client *http.Client, source string) ([]string, error) {
	if source == "" {
		return nil, errors.New("no name source configured")
	}

	var body io.ReadCloser
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		if client == nil {
			client = http.DefaultClient
		}
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to build request: %w", err)
		}
		resp, err := client.Do(req)
		if err != nil {
			return nil, err
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status %s", resp.Status)
		}
		body = resp.Body
	} else {
		file, err := os.Open(source)
		if err != nil {
			return nil, err
		}
		body = file
	}
	defer body.Close()

	return decodeNames(body)
}

func decodeNames(r io.Reader) ([]string, error) {
	var doc nameList
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode names: %w", err)
	}
	if doc.Names == nil {
		return nil, errNoNamesField
	}
	return *doc.Names, nil
}
