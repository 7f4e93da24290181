package main

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// defaultBaseURL is the upstream Aviation Weather Center data API.
// It can be overridden by setting WXDECODE_BASE_URL, either in the
// environment or in an optional .env file loaded at startup.
const defaultBaseURL = "https://aviationweather.gov/api/data"

var baseURL = defaultBaseURL

// loadEnvConfig loads an optional .env file (ignored if absent) and
// applies any WXDECODE_BASE_URL override found there or already in the
// environment, so a self-hosted mirror of the data API can be swapped
// in without a rebuild.
func loadEnvConfig() {
	_ = godotenv.Load()
	if v := strings.TrimSpace(os.Getenv("WXDECODE_BASE_URL")); v != "" {
		baseURL = strings.TrimRight(v, "/")
	}
}

func fetchData(path, stationCode, dataType string) (string, error) {
	url := fmt.Sprintf("%s/%s?ids=%s", baseURL, path, stationCode)

	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("error fetching %s: %w", dataType, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("error reading response: %w", err)
	}

	data := strings.TrimSpace(string(body))
	if data == "" {
		return "", fmt.Errorf("no %s data found for station %s", dataType, stationCode)
	}

	return data, nil
}

// FetchMETAR fetches the raw METAR/SPECI text for a given station code.
func FetchMETAR(stationCode string) (string, error) {
	return fetchData("metar", stationCode, "METAR")
}

// FetchTAF fetches the raw TAF text for a given station code.
func FetchTAF(stationCode string) (string, error) {
	return fetchData("taf", stationCode, "TAF")
}
