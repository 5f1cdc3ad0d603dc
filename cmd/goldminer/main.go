package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"goldminer/internal/authors"
	"goldminer/internal/config"
	"goldminer/internal/digest"
	"goldminer/internal/distributor"
	"goldminer/internal/explorer"
	"goldminer/internal/slack"
	"goldminer/internal/storage"
)

func main() {
	outPath := flag.String("out", "", "write the digest to a file instead of stdout")
	since := flag.String("since", "", "start of the mining window (YYYY-MM-DD, default last Friday)")
	flag.Parse()

	cfg, err := config.Load(".")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetLevel(logrus.InfoLevel)

	channel := cfg.Channel
	if flag.NArg() > 0 {
		channel = flag.Arg(0)
	}

	startDate := explorer.LastFriday(time.Now())
	if *since != "" {
		startDate, err = time.Parse("2006-01-02", *since)
		if err != nil {
			log.Fatalf("Invalid -since date %q: %v", *since, err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, channel, startDate, *outPath, log); err != nil {
		var authErr *slack.AuthenticationError
		if errors.As(err, &authErr) {
			log.Fatal(authErr.Error())
		}
		log.Fatalf("Mining #%s failed: %v", channel, err)
	}
}

func run(ctx context.Context, cfg config.Config, channel string, startDate time.Time, outPath string, log *logrus.Logger) error {
	client, err := slack.NewClient(ctx, cfg.SlackAPIToken, log)
	if err != nil {
		return err
	}

	directory := authors.New(nil)
	if cfg.AuthorsFile != "" {
		directory, err = authors.Load(cfg.AuthorsFile)
		if err != nil {
			return err
		}
	}

	miner := explorer.New(client, client, directory, cfg.GoldReaction, log)
	batch, err := miner.Explore(ctx, channel, startDate)
	if err != nil {
		return err
	}

	if cfg.ArchivePath != "" {
		archive, err := storage.NewBadgerArchive(cfg.ArchivePath, log)
		if err != nil {
			return err
		}
		defer func() {
			if err := archive.Close(); err != nil {
				log.WithError(err).Error("Error closing batch archive")
			}
		}()
		if err := archive.SaveBatch(ctx, batch); err != nil {
			return err
		}
	}

	writer := digest.NewWriter(cfg.OpenAIAPIToken, log)
	document, err := digest.NewComposer(cfg.DigestAuthor, log).Compose(ctx, batch, writer)
	if err != nil {
		return err
	}

	var sink distributor.Distributor = distributor.NewTerminal()
	if outPath != "" {
		sink = distributor.NewFile(outPath)
	}
	return sink.Distribute(document)
}
