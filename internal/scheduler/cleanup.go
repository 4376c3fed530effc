package scheduler

import (
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"

	"trekkit/internal/repository"
)

// Cleanup runs the periodic maintenance jobs, currently only the expired
// email-verification-code sweep. Code expiry is enforced here, not at
// verification time, so a code stays usable until the next sweep fires.
type Cleanup struct {
	cron             *cron.Cron
	verificationRepo *repository.VerificationRepository
	sweepSpec        string
}

func NewCleanup(verificationRepo *repository.VerificationRepository, sweepSpec string) *Cleanup {
	if sweepSpec == "" {
		sweepSpec = "@every 1m"
	}
	return &Cleanup{
		cron:             cron.New(),
		verificationRepo: verificationRepo,
		sweepSpec:        sweepSpec,
	}
}

func (c *Cleanup) Start() error {
	if _, err := c.cron.AddFunc(c.sweepSpec, c.sweepExpiredCodes); err != nil {
		return err
	}
	c.cron.Start()
	log.Info().Str("spec", c.sweepSpec).Msg("cleanup scheduler started")
	return nil
}

func (c *Cleanup) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
}

func (c *Cleanup) sweepExpiredCodes() {
	deleted, err := c.verificationRepo.DeleteExpired(time.Now())
	if err != nil {
		log.Error().Err(err).Msg("sweep expired verification codes failed")
		return
	}
	if deleted > 0 {
		log.Debug().Int64("deleted", deleted).Msg("swept expired verification codes")
	}
}
