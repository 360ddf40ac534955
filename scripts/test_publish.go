//go:build ignore

package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/goccy/go-json"
	"github.com/heritage-archive/content-service/internal/domain"
	"github.com/redis/go-redis/v9"
)

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address")
	kind := flag.String("kind", string(domain.KindCollections), "record kind: map, timeline, collections")
	key := flag.String("key", "test-collection", "record key")
	group := flag.String("group", "content-event-workers", "worker consumer group to watch")
	flag.Parse()

	recordKind := domain.RecordKind(*kind)
	if !recordKind.Valid() {
		log.Fatalf("Unknown kind %q", *kind)
	}

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	// Проверка подключения
	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := domain.NewContentChangedEvent(recordKind, *key, domain.ActionReplaced)
	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	// Публикация в стрим
	messageID, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: domain.StreamContentChanged,
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("✅ Event published\n")
	fmt.Printf("   Stream: %s\n", domain.StreamContentChanged)
	fmt.Printf("   Message ID: %s\n", messageID)
	fmt.Printf("   Event: %s %s/%s\n", event.Action, event.Kind, event.Key)

	// Ожидание обработки воркером
	fmt.Printf("\n⏳ Waiting for group %q to acknowledge...\n", *group)

	timeout := time.After(30 * time.Second)
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-timeout:
			fmt.Println("❌ Timeout waiting for worker")
			return
		case <-ticker.C:
			groups, err := client.XInfoGroups(ctx, domain.StreamContentChanged).Result()
			if err != nil {
				continue
			}

			for _, g := range groups {
				if g.Name != *group || g.LastDeliveredID < messageID || g.Pending > 0 {
					continue
				}

				stats, err := client.Get(ctx, domain.StatsCacheKey).Result()
				if err != nil && err != redis.Nil {
					stats = err.Error()
				}
				fmt.Printf("\n✅ Event processed\n")
				fmt.Printf("   Cached statistics: %s\n", stats)
				return
			}
		}
	}
}
