package handler

import (
	"time"

	"cinema_scheduler/store"

	"github.com/patrickmn/go-cache"
)

var screeningStore store.ScreeningStore

// InitScreeningStore cắm store cho toàn bộ handler, gọi một lần lúc khởi động
func InitScreeningStore(s store.ScreeningStore) {
	screeningStore = s
}

// Thống kê ngày được cache ngắn hạn và flush khi có bất kỳ thay đổi lịch nào
var statsCache = cache.New(30*time.Second, 5*time.Minute)

func FlushStatsCache() {
	statsCache.Flush()
}
