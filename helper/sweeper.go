package helper

import (
	"log"
	"time"

	"cinema_scheduler/constants"
	"cinema_scheduler/database"
	"cinema_scheduler/model"

	"github.com/robfig/cron/v3"
)

var scheduler *cron.Cron

func StartScreeningSweeper() {
	scheduler = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	// 5 phút một lần là đủ
	_, err := scheduler.AddFunc("*/5 * * * *", markExpiredScreenings)
	if err != nil {
		log.Printf("failed to start screening sweeper: %v", err)
		return
	}

	scheduler.Start()
	log.Println("screening sweeper started (every 5 minutes)")
}

// markExpiredScreenings chuyển trạng thái các suất đã qua sang expired.
// Date và EndTime đều zero-pad nên so sánh chuỗi trong SQL là so sánh thời gian.
func markExpiredScreenings() {
	now := time.Now()
	today := now.Format("2006-01-02")
	clock := now.Format("15:04")

	result := database.DB.Model(&model.Screening{}).
		Where("status = ? AND (date < ? OR (date = ? AND end_time < ?))",
			constants.SCREENING_SCHEDULED, today, today, clock).
		Update("status", constants.SCREENING_EXPIRED)

	if result.Error != nil {
		log.Printf("failed to expire screenings: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("marked %d screenings as expired", result.RowsAffected)
	}
}

func StopScreeningSweeper() {
	if scheduler != nil {
		scheduler.Stop()
		log.Println("screening sweeper stopped")
	}
}
