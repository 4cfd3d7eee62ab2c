package publisher

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/bytedance/sonic"
	amqp "github.com/rabbitmq/amqp091-go"

	"gymtrack_backend/internals/configs"
)

const queueName = "notification.created"

// NotificationEvent — payload advisory yang dikirim ke broker setelah
// baris notifikasi commit. Konsumen eksternal (push gateway) membaca ini.
type NotificationEvent struct {
	NotificationID string    `json:"notification_id"`
	TrainerID      string    `json:"trainer_id"`
	Title          string    `json:"title"`
	Message        string    `json:"message"`
	CreatedAt      time.Time `json:"created_at"`
}

var (
	mu   sync.Mutex
	conn *amqp.Connection
	ch   *amqp.Channel
)

// Init buka koneksi + channel sekali di startup. AMQP tidak
// dikonfigurasi → publisher mati, Publish jadi no-op (DB tetap
// source of truth).
func Init() {
	url := configs.AMQPURL
	if url == "" {
		log.Println("[NOTIF-PUB] AMQP_URL kosong, fan-out dimatikan")
		return
	}

	c, err := amqp.Dial(url)
	if err != nil {
		log.Printf("[NOTIF-PUB] dial gagal: %v (fan-out dimatikan)", err)
		return
	}

	channel, err := c.Channel()
	if err != nil {
		log.Printf("[NOTIF-PUB] buka channel gagal: %v (fan-out dimatikan)", err)
		_ = c.Close()
		return
	}

	// durable supaya event selamat dari restart broker
	if _, err := channel.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		log.Printf("[NOTIF-PUB] queue declare gagal: %v (fan-out dimatikan)", err)
		_ = channel.Close()
		_ = c.Close()
		return
	}

	mu.Lock()
	conn, ch = c, channel
	mu.Unlock()
	log.Println("[NOTIF-PUB] ✅ terhubung ke AMQP, queue:", queueName)
}

// Publish kirim event fire-and-forget. Error cuma di-log — publish
// TIDAK pernah menggagalkan transaksi notifikasi.
func Publish(event NotificationEvent) {
	mu.Lock()
	channel := ch
	mu.Unlock()
	if channel == nil {
		return
	}

	body, err := sonic.Marshal(event)
	if err != nil {
		log.Printf("[NOTIF-PUB] marshal gagal: %v", err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	err = channel.PublishWithContext(ctx,
		"",        // default exchange
		queueName, // routing key = nama queue
		false, false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		log.Printf("[NOTIF-PUB] publish gagal: %v", err)
	}
}

// Close dipanggil saat graceful shutdown.
func Close() {
	mu.Lock()
	defer mu.Unlock()
	if ch != nil {
		_ = ch.Close()
		ch = nil
	}
	if conn != nil {
		_ = conn.Close()
		conn = nil
	}
}
