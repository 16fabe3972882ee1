package main

import (
	"os"

	"github.com/AntonioJCosta/tally/internal/adapters/recordgen"
	"github.com/AntonioJCosta/tally/internal/adapters/runstore"
	"github.com/AntonioJCosta/tally/internal/adapters/sizepresets"
	"github.com/AntonioJCosta/tally/internal/core/ports"
	"github.com/AntonioJCosta/tally/internal/core/services/aggregation"
	"github.com/AntonioJCosta/tally/internal/core/services/benchmarking"
	"github.com/AntonioJCosta/tally/internal/handlers/cli"
)

// Version is set at build time
var Version = "dev"

func main() {
	generator := recordgen.NewGenerator()
	aggregationSvc := aggregation.NewService()
	benchmarkSvc := benchmarking.NewService(generator, aggregationSvc)

	presetOpener := ports.SizePresetOpener(sizepresets.NewYAMLProvider)
	storeOpener := ports.RunStoreOpener(runstore.NewSQLiteStore)

	rootCmd := cli.NewRootCommand(Version, generator, aggregationSvc, benchmarkSvc, presetOpener, storeOpener)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
