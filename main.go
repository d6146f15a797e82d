package main

import (
	"fmt"
	"os"

	"github.com/dltn/go-repox/repox"

	logger "github.com/Financial-Times/go-logger"
	"github.com/jawher/mow.cli"
	_ "github.com/joho/godotenv/autoload"
	log "github.com/sirupsen/logrus"
)

const appName = "go-repox"

func main() {

	app := cli.App(appName, "Manage aggregators, providers, datasets and harvests on a REPOX instance.")

	repoxURL := app.String(cli.StringOpt{
		Name:   "url",
		Value:  "http://localhost:8080",
		Desc:   "URL of the REPOX instance",
		EnvVar: "REPOX_URL",
	})

	username := app.String(cli.StringOpt{
		Name:   "username",
		Value:  "",
		Desc:   "Username for the REPOX Swagger API",
		EnvVar: "REPOX_USERNAME",
	})

	password := app.String(cli.StringOpt{
		Name:   "password",
		Value:  "",
		Desc:   "Password for the REPOX Swagger API",
		EnvVar: "REPOX_PASSWORD",
	})

	client := func() *repox.Client {
		c, err := repox.NewClient(*repoxURL, *username, *password)
		if err != nil {
			log.Fatalf("Error creating REPOX client: %v", err)
		}
		return c
	}

	app.Before = func() {
		logger.InitDefaultLogger(appName)
	}

	app.Command("aggregators", "Work with aggregators", func(cmd *cli.Cmd) {
		cmd.Command("list", "List all aggregators", func(cmd *cli.Cmd) {
			verbose := cmd.BoolOpt("v verbose", false, "Print metadata for each aggregator")
			cmd.Action = func() {
				c := client()
				if *verbose {
					aggregators, err := c.ListAggregators()
					if err != nil {
						log.Fatalf("Error listing aggregators: %v", err)
					}
					for _, aggregator := range aggregators {
						fmt.Printf("%s\t%s\t%s\n", aggregator.ID, aggregator.Name, aggregator.Homepage)
					}
					return
				}
				ids, err := c.AggregatorIDs()
				if err != nil {
					log.Fatalf("Error listing aggregators: %v", err)
				}
				for _, id := range ids {
					fmt.Println(id)
				}
			}
		})
	})

	app.Command("providers", "Work with data providers", func(cmd *cli.Cmd) {
		cmd.Command("list", "List the providers of an aggregator", func(cmd *cli.Cmd) {
			aggregatorID := cmd.StringArg("AGGREGATOR", "", "Aggregator id")
			cmd.Action = func() {
				providers, err := client().ListProviders(*aggregatorID)
				if err != nil {
					log.Fatalf("Error listing providers: %v", err)
				}
				for _, provider := range providers {
					fmt.Printf("%s\t%s\t%s\n", provider.ID, provider.Name, provider.ProviderType)
				}
			}
		})
	})

	app.Command("datasets", "Work with datasets", func(cmd *cli.Cmd) {
		cmd.Command("list", "List the datasets of a provider", func(cmd *cli.Cmd) {
			providerID := cmd.StringArg("PROVIDER", "", "Provider id")
			cmd.Action = func() {
				ids, err := client().DatasetIDs(*providerID)
				if err != nil {
					log.Fatalf("Error listing datasets: %v", err)
				}
				for _, id := range ids {
					fmt.Println(id)
				}
			}
		})
		cmd.Command("count", "Count the records in a dataset", func(cmd *cli.Cmd) {
			datasetID := cmd.StringArg("DATASET", "", "Dataset id")
			cmd.Action = func() {
				count, err := client().RecordCount(*datasetID)
				if err != nil {
					log.Fatalf("Error counting records: %v", err)
				}
				fmt.Println(count)
			}
		})
	})

	app.Command("harvest", "Start and inspect harvests", func(cmd *cli.Cmd) {
		cmd.Command("start", "Start a harvest of a dataset", func(cmd *cli.Cmd) {
			datasetID := cmd.StringArg("DATASET", "", "Dataset id")
			sample := cmd.BoolOpt("sample", false, "Harvest only a sample of the records")
			cmd.Action = func() {
				status, err := client().StartHarvest(*datasetID, *sample)
				if err != nil {
					log.Fatalf("Error starting harvest: %v", err)
				}
				fmt.Println(status)
			}
		})
		cmd.Command("status", "Show the status of a dataset's harvest", func(cmd *cli.Cmd) {
			datasetID := cmd.StringArg("DATASET", "", "Dataset id")
			cmd.Action = func() {
				status, err := client().HarvestStatus(*datasetID)
				if err != nil {
					log.Fatalf("Error getting harvest status: %v", err)
				}
				fmt.Println(status)
			}
		})
		cmd.Command("log", "Show the log of a dataset's last harvest", func(cmd *cli.Cmd) {
			datasetID := cmd.StringArg("DATASET", "", "Dataset id")
			cmd.Action = func() {
				harvestLog, err := client().LastHarvestLog(*datasetID)
				if err != nil {
					log.Fatalf("Error getting harvest log: %v", err)
				}
				fmt.Println(harvestLog)
			}
		})
	})

	app.Command("stats", "Show instance-wide statistics", func(cmd *cli.Cmd) {
		cmd.Action = func() {
			statistics, err := client().Statistics()
			if err != nil {
				log.Fatalf("Error getting statistics: %v", err)
			}
			fmt.Printf("aggregators:\t%d\n", statistics.Aggregators)
			fmt.Printf("providers:\t%d\n", statistics.DataProviders)
			fmt.Printf("records:\t%d\n", statistics.RecordsTotal)
			for _, format := range statistics.MetadataFormatStatistics {
				fmt.Printf("%s:\t%d sets, %d records\n", format.MetadataFormat, format.DataSources, format.Records)
			}
		}
	})

	app.Run(os.Args)
}
