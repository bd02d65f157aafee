package main

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"pin-packs/pkg/cache"
	"pin-packs/pkg/config"
	"pin-packs/pkg/database"
	"pin-packs/pkg/logger"
	"pin-packs/pkg/models"
	"pin-packs/pkg/s3"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const driftLedgerKey = "checkout:download_drift"

type seedPin struct {
	title    string
	category string
	lat, lng float64
}

type seedPack struct {
	creator    string
	title      string
	city       string
	country    string
	price      string
	categories []string
	pins       []seedPin
}

var demoPacks = []seedPack{
	{
		creator:    "ana@pinpacks.local",
		title:      "Lisbon in Two Days",
		city:       "Lisbon",
		country:    "Portugal",
		price:      "9.99",
		categories: []string{"food", "viewpoints", "history"},
		pins: []seedPin{
			{"Belem Tower", "history", 38.6916, -9.2160},
			{"Miradouro da Senhora do Monte", "viewpoints", 38.7190, -9.1329},
			{"Time Out Market", "food", 38.7071, -9.1459},
		},
	},
	{
		creator:    "ken@pinpacks.local",
		title:      "Kyoto Temples Off the Beaten Path",
		city:       "Kyoto",
		country:    "Japan",
		price:      "14.50",
		categories: []string{"temples", "gardens"},
		pins: []seedPin{
			{"Otagi Nenbutsu-ji", "temples", 35.0296, 135.6647},
			{"Gio-ji", "gardens", 35.0228, 135.6690},
		},
	},
	{
		creator:    "ana@pinpacks.local",
		title:      "Porto Coffee Crawl",
		city:       "Porto",
		country:    "Portugal",
		price:      "4.00",
		categories: []string{"coffee"},
	},
}

func main() {
	var (
		orders     = flag.Int("orders", 1, "number of pending orders to create over all seeded packs")
		resetDrift = flag.Bool("reset-drift", false, "clear the download drift ledger in Redis")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	log := logger.NewWithConfig(logger.Config{Level: cfg.LogLevel, Service: "seed"})
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Error("Failed to connect to database: %v", err)
		panic(err)
	}

	s3Client, err := s3.NewClient(cfg)
	if err != nil {
		log.Error("Failed to create S3 client: %v", err)
		panic(err)
	}

	packIDs, err := seedPacks(db, s3Client, log)
	if err != nil {
		log.Error("Failed to seed packs: %v", err)
		panic(err)
	}

	for i := 0; i < *orders; i++ {
		orderID, err := seedOrder(db, packIDs, i)
		if err != nil {
			log.Error("Failed to seed order: %v", err)
			panic(err)
		}
		log.Info("Pending order %s ready, fulfill with orderId=%s paypalOrderId=SEED-%d", orderID, orderID, i+1)
	}

	if *resetDrift {
		redisClient, err := cache.NewRedisClient(cfg)
		if err != nil {
			log.Warn("Redis unavailable, drift ledger not reset: %v", err)
		} else {
			defer redisClient.Close()
			if err := redisClient.Del(context.Background(), driftLedgerKey).Err(); err != nil {
				log.Warn("Failed to reset drift ledger: %v", err)
			}
		}
	}

	log.Info("Database seeded successfully!")
}

// seedPacks skips packs that already exist for the same creator and title.
func seedPacks(db *gorm.DB, s3Client *s3.Client, log *logger.Logger) ([]string, error) {
	packIDs := make([]string, 0, len(demoPacks))

	for _, sp := range demoPacks {
		var existing models.Pack
		result := db.Where("creator_email = ? AND title = ?", sp.creator, sp.title).Limit(1).Find(&existing)
		if result.Error != nil {
			return nil, result.Error
		}
		if result.RowsAffected > 0 {
			log.Info("Pack %q already exists, skipping", sp.title)
			packIDs = append(packIDs, existing.ID)
			continue
		}

		zero := 0
		pack := &models.Pack{
			Title:        sp.title,
			Description:  fmt.Sprintf("Hand picked places in %s", sp.city),
			City:         sp.city,
			Country:      sp.country,
			Price:        decimal.RequireFromString(sp.price),
			CreatorEmail: sp.creator,
			PinCount:     len(sp.pins),
			Categories:   sp.categories,
			Status:       models.PackStatusActive,
		}
		if len(sp.pins) == 0 {
			pack.PinCount = 8
		}
		pack.DownloadCount = &zero

		if err := db.Create(pack).Error; err != nil {
			return nil, fmt.Errorf("failed to create pack %q: %w", sp.title, err)
		}

		if len(sp.pins) > 0 {
			pins := make([]models.Pin, len(sp.pins))
			for i, p := range sp.pins {
				photoKey := fmt.Sprintf("pins/seed/%s-%d.jpg", slug(sp.title), i)
				pins[i] = models.Pin{
					Title:         p.title,
					Description:   fmt.Sprintf("%s, %s", p.title, sp.city),
					GoogleMapsURL: fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%f,%f", p.lat, p.lng),
					Category:      p.category,
					Latitude:      p.lat,
					Longitude:     p.lng,
					Photos:        []string{s3Client.ObjectURL(photoKey)},
				}
			}
			if err := db.Create(&pins).Error; err != nil {
				return nil, fmt.Errorf("failed to create pins for %q: %w", sp.title, err)
			}

			links := make([]models.PackPin, len(pins))
			for i := range pins {
				links[i] = models.PackPin{PackID: pack.ID, PinID: pins[i].ID, Position: i}
			}
			if err := db.Create(&links).Error; err != nil {
				return nil, fmt.Errorf("failed to link pins for %q: %w", sp.title, err)
			}
		}

		log.Info("Created pack %q (%s) with %d pins", pack.Title, pack.ID, len(sp.pins))
		packIDs = append(packIDs, pack.ID)
	}

	return packIDs, nil
}

// seedOrder creates a pending order over two of the packs, rotating by n.
func seedOrder(db *gorm.DB, packIDs []string, n int) (string, error) {
	if len(packIDs) == 0 {
		return "", fmt.Errorf("no packs to order")
	}

	var packs []models.Pack
	chosen := []string{packIDs[n%len(packIDs)]}
	if len(packIDs) > 1 {
		chosen = append(chosen, packIDs[(n+1)%len(packIDs)])
	}
	if err := db.Where("id IN ?", chosen).Find(&packs).Error; err != nil {
		return "", err
	}

	order := &models.Order{
		Status:        models.OrderStatusPending,
		CustomerEmail: "buyer@pinpacks.local",
		CustomerName:  "Demo Buyer",
	}
	for _, p := range packs {
		order.TotalAmount = order.TotalAmount.Add(p.Price)
	}
	if err := db.Omit("Items").Create(order).Error; err != nil {
		return "", fmt.Errorf("failed to create order: %w", err)
	}

	items := make([]models.OrderItem, len(packs))
	for i, p := range packs {
		items[i] = models.OrderItem{OrderID: order.ID, PackID: p.ID, Price: p.Price}
	}
	if err := db.Create(&items).Error; err != nil {
		return "", fmt.Errorf("failed to create order items: %w", err)
	}

	return order.ID, nil
}

func slug(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), "-"))
}
