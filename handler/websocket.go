package handler

import (
	"context"
	"log"
	"sort"
	"sync"

	"cinema_scheduler/config"
	"cinema_scheduler/model"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

var (
	redisClient = redis.NewClient(&redis.Options{
		Addr: config.ConfigWithDefault("REDIS_ADDR", "localhost:6379"),
	})

	clients = make(map[string]map[*websocket.Conn]bool)
	mu      sync.Mutex
)

// ScheduleWebsocket đẩy lịch chiếu của một ngày cho client mỗi khi lịch đổi
func ScheduleWebsocket(c *websocket.Conn) {
	date := c.Params("date")

	defer func() {
		mu.Lock()
		if clients[date] != nil {
			delete(clients[date], c)
		}
		mu.Unlock()
		c.Close()
	}()

	mu.Lock()
	if clients[date] == nil {
		clients[date] = make(map[*websocket.Conn]bool)
	}
	clients[date][c] = true
	mu.Unlock()

	// gửi lịch hiện tại ngay khi kết nối
	day, err := fetchDaySchedule(date)
	if err == nil {
		c.WriteJSON(day)
	}

	pubsub := redisClient.Subscribe(context.Background(), "schedule:"+date)
	defer pubsub.Close()

	for range pubsub.Channel() {
		day, err := fetchDaySchedule(date)
		if err != nil {
			continue
		}
		if err := c.WriteJSON(day); err != nil {
			return
		}
	}
}

// PublishScheduleUpdate báo cho các client đang xem ngày này tải lại lịch
func PublishScheduleUpdate(date string) {
	if err := redisClient.Publish(context.Background(), "schedule:"+date, "updated").Err(); err != nil {
		log.Printf("failed to publish schedule update for %s: %v", date, err)
	}
}

func fetchDaySchedule(date string) ([]model.Screening, error) {
	all, err := screeningStore.All()
	if err != nil {
		return nil, err
	}
	day := []model.Screening{}
	for _, s := range all {
		if s.Date == date {
			day = append(day, s)
		}
	}
	sort.Slice(day, func(i, j int) bool {
		if day[i].RoomId != day[j].RoomId {
			return day[i].RoomId < day[j].RoomId
		}
		return day[i].StartTime < day[j].StartTime
	})
	return day, nil
}
