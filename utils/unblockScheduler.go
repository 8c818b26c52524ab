package utils

import (
	"fmt"
	"log"
	"time"

	"devpath/repository"

	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[UNBLOCK-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartUnblockScheduler runs a minutely job lifting login blocks whose window
// has passed. Login itself also self-heals on the next attempt; the job keeps
// account state accurate in between.
func StartUnblockScheduler(users *repository.UserRepository) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("@every 1m", func() {
		count, err := users.ClearExpiredBlocks(time.Now())
		if err != nil {
			logScheduler("Error clearing expired blocks: " + err.Error())
			return
		}
		if count > 0 {
			logScheduler(fmt.Sprintf("Unblocked %d user(s)", count))
		}
	})
	if err != nil {
		log.Fatalf("Failed to schedule unblock job: %v", err)
	}

	c.Start()
	logScheduler("Started")
	return c
}
