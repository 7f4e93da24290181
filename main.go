package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/fatih/color"

	"github.com/aerowx/noaaweather/parser"
)

func main() {
	metarOnly := flag.Bool("metar", false, "Show only METAR")
	tafOnly := flag.Bool("taf", false, "Show only TAF")
	noRawFlag := flag.Bool("no-raw", false, "Hide raw report text")
	flagNoColor := flag.Bool("no-color", false, "Disable color output")
	flag.Parse()

	if *flagNoColor {
		color.NoColor = true
	}

	loadEnvConfig()

	stationCode, rawInput, stdinHasData := readFromStdin()

	if !stdinHasData {
		var err error
		if args := flag.Args(); len(args) > 0 {
			stationCode, err = getStationCodeFromArgs(args)
		} else {
			stationCode, err = promptForStationCode()
		}
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if !*tafOnly {
		processMETAR(stationCode, rawInput, stdinHasData, *noRawFlag)
	}

	if !*metarOnly && !stdinHasData {
		if !*tafOnly {
			fmt.Println("\n----------------------------------")
		}
		processTAF(stationCode, *noRawFlag)
	}
}

func processMETAR(stationCode, rawInput string, stdinHasData, noRaw bool) {
	raw := rawInput
	if !stdinHasData || raw == "" {
		fmt.Printf("Fetching METAR for %s...\n", stationCode)
		var err error
		raw, err = FetchMETAR(stationCode)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
	}

	if !noRaw {
		fmt.Println("\nRaw METAR:")
		fmt.Println(raw)
	}

	result := parser.ParseMetar(raw, time.Now().UTC())
	if result.IsFailure() {
		fmt.Printf("\nError decoding METAR: %s\n", result.ErrorMessage())
		return
	}
	decoded, _ := result.Data()

	fmt.Println("\nDecoded METAR:")
	fmt.Print(FormatMetar(decoded, time.Now().UTC()))
}

func processTAF(stationCode string, noRaw bool) {
	fmt.Printf("Fetching TAF for %s...\n", stationCode)
	raw, err := FetchTAF(stationCode)
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	if !noRaw {
		fmt.Println("\nRaw TAF:")
		fmt.Println(raw)
	}

	result := parser.ParseTaf(raw, time.Now().UTC())
	if result.IsFailure() {
		fmt.Printf("\nError decoding TAF: %s\n", result.ErrorMessage())
		return
	}
	decoded, _ := result.Data()

	fmt.Println("\nDecoded TAF:")
	fmt.Print(FormatTaf(decoded, time.Now().UTC()))
}
