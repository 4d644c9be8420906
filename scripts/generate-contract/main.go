package main

import (
	"flag"
	"fmt"
	"os"

	pkgopenapi "github.com/goliatone/go-priceform/pkg/openapi"
	"github.com/goliatone/go-priceform/pkg/schema"
)

func main() {
	var (
		outputPath = flag.String("output", "pkg/openapi/contracts/"+pkgopenapi.PredictContract, "where to write the contract")
		serverURL  = flag.String("server", pkgopenapi.DefaultContractInfo().ServerURL, "server URL recorded in the contract")
		version    = flag.String("version", pkgopenapi.DefaultContractInfo().Version, "contract version")
	)
	flag.Parse()

	info := pkgopenapi.DefaultContractInfo()
	info.ServerURL = *serverURL
	info.Version = *version

	raw, err := pkgopenapi.GenerateContract(schema.Housing(), info)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to generate contract: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*outputPath, raw, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write output: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Generated predict contract (%d bytes) -> %s\n", len(raw), *outputPath)
}
