package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/iliyamo/register-my-marriage/internal/config"
	"github.com/iliyamo/register-my-marriage/internal/database"
	"github.com/iliyamo/register-my-marriage/internal/queue"
	"github.com/iliyamo/register-my-marriage/internal/repository"
)

// The worker drains contact.submitted events into MySQL so the enquiries
// the site forwards are kept for follow-up.
func main() {
	if _, err := config.LoadEnv(".env"); err != nil {
		logrus.WithError(err).Fatal("load .env")
	}
	cfg := config.Load()
	log := config.NewLogger(cfg, os.Stdout).WithField("component", "worker")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.Open(ctx, config.LoadDBConfig())
	if err != nil {
		log.WithError(err).Fatal("open database")
	}
	defer func() { _ = db.Close() }()

	inquiries := repository.NewInquiryRepo(db)
	if err := inquiries.EnsureSchema(ctx); err != nil {
		log.WithError(err).Fatal("ensure inquiry schema")
	}

	if counts, err := inquiries.CountByTenant(ctx, time.Now().Add(-24*time.Hour)); err != nil {
		log.WithError(err).Warn("count recent inquiries")
	} else {
		log.WithField("last_24h", counts).Info("inquiry backlog")
	}

	qc := config.LoadQueueConfig()
	log.Info("consuming contact inquiries")
	if err := queue.StartContactConsumer(ctx, qc.URL, inquiries, log); err != nil && !errors.Is(err, context.Canceled) {
		log.WithError(err).Fatal("contact consumer stopped")
	}
	log.Info("worker stopped")
}
