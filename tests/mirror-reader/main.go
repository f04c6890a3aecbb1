package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"io"
	"log"
	"os/signal"
	"strings"
	"syscall"

	"github.com/agusnoopy3000/huertohogar-api/internal/mirror"
	"github.com/segmentio/kafka-go"
)

// Печатает события зеркала заказов. Полезно при локальной отладке с KAFKA_ENABLED=true.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated broker list")
	topic := flag.String("topic", "orders-mirror", "mirror topic")
	flag.Parse()

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:     strings.Split(*brokers, ","),
		Topic:       *topic,
		StartOffset: kafka.FirstOffset,
	})
	defer reader.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return
			}
			log.Println("failed to read message:", err)
			continue
		}

		switch eventType(m) {
		case string(mirror.EventOrderCreated):
			var order mirror.OrderSnapshot
			if err := json.Unmarshal(m.Value, &order); err != nil {
				log.Println("bad order snapshot:", err)
				continue
			}
			log.Printf("order %s created by %s: %d items, total %s", order.ID, order.UserEmail, len(order.Items), order.Total)
		case string(mirror.EventStatusChanged):
			var change mirror.StatusChange
			if err := json.Unmarshal(m.Value, &change); err != nil {
				log.Println("bad status change:", err)
				continue
			}
			log.Printf("order %s -> %s", change.OrderID, change.Status)
		default:
			log.Printf("unknown event at offset %d: %s", m.Offset, m.Value)
		}
	}
}

func eventType(m kafka.Message) string {
	for _, h := range m.Headers {
		if h.Key == mirror.EventTypeHeader {
			return string(h.Value)
		}
	}
	return ""
}
