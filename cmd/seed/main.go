package main

import (
	"flag"
	"fmt"
	"math/rand"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/pwlogicon/pwlogicon/config"
)

type city struct {
	name string
	lat  float64
	lng  float64
}

var cities = []city{
	{"Jakarta", -6.2088, 106.8456},
	{"Bandung", -6.9175, 107.6191},
	{"Cirebon", -6.7320, 108.5523},
	{"Semarang", -6.9667, 110.4167},
	{"Yogyakarta", -7.7956, 110.3695},
	{"Surakarta", -7.5755, 110.8243},
	{"Surabaya", -7.2575, 112.7521},
	{"Malang", -7.9666, 112.6326},
	{"Palembang", -2.9761, 104.7754},
	{"Medan", 3.5952, 98.6722},
}

var payloads = []string{
	"palletized electronics",
	"textiles",
	"frozen seafood",
	"packaged foods",
	"construction steel",
	"furniture",
	"automotive parts",
	"paper rolls",
}

const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomPlate() string {
	letter := string(charset[rand.Intn(26)])
	digits := fmt.Sprintf("%04d", rand.Intn(10000))
	suffix := string([]byte{charset[rand.Intn(26)], charset[rand.Intn(26)], charset[rand.Intn(26)]})
	return letter + digits + suffix
}

func drift(v float64) float64 {
	return v + (rand.Float64()-0.5)*0.2
}

func main() {
	vehicles := flag.Int("vehicles", 25, "vehicle positions to insert")
	opportunities := flag.Int("opportunities", 40, "opportunities to insert")
	shipments := flag.Int("shipments", 300, "shipment records to insert")
	configPath := flag.String("c", "", "path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := config.NewPostgres(cfg)
	if err != nil {
		log.Fatalf("postgres: %v", err)
	}
	defer func() { _ = db.Close() }()

	now := time.Now()

	for i := 0; i < *vehicles; i++ {
		c := cities[rand.Intn(len(cities))]
		updated := now.Add(-time.Duration(rand.Intn(30)) * time.Minute)

		if _, err := db.Exec(
			`INSERT INTO vehicle_positions (license_plate, latitude, longitude, last_updated)
			 VALUES ($1, $2, $3, $4)
			 ON CONFLICT (license_plate) DO UPDATE
			 SET latitude = EXCLUDED.latitude, longitude = EXCLUDED.longitude, last_updated = EXCLUDED.last_updated`,
			randomPlate(), drift(c.lat), drift(c.lng), updated,
		); err != nil {
			log.Fatalf("insert vehicle position: %v", err)
		}
	}

	for i := 0; i < *opportunities; i++ {
		origin := cities[rand.Intn(len(cities))]
		destination := cities[rand.Intn(len(cities))]
		for destination.name == origin.name {
			destination = cities[rand.Intn(len(cities))]
		}

		revenue := 150 + rand.Float64()*2350
		// keep a few expired rows around so the expiry filter has work to do
		expiry := now.Add(time.Duration(rand.Intn(48)) * time.Hour)
		if rand.Float64() < 0.2 {
			expiry = now.Add(-time.Duration(1+rand.Intn(24)) * time.Hour)
		}

		if _, err := db.Exec(
			`INSERT INTO opportunities (origin, destination, origin_latitude, origin_longitude, payload, revenue, expiry)
			 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			origin.name, destination.name, drift(origin.lat), drift(origin.lng),
			payloads[rand.Intn(len(payloads))], revenue, expiry,
		); err != nil {
			log.Fatalf("insert opportunity: %v", err)
		}
	}

	for i := 0; i < *shipments; i++ {
		completed := now.Add(-time.Duration(rand.Intn(400*24)) * time.Hour)
		revenue := 150 + rand.Float64()*2350

		if _, err := db.Exec(
			`INSERT INTO shipments (completed_at, revenue) VALUES ($1, $2)`,
			completed, revenue,
		); err != nil {
			log.Fatalf("insert shipment: %v", err)
		}
	}

	log.Infof("seeded %d vehicle positions, %d opportunities, %d shipment records",
		*vehicles, *opportunities, *shipments)
}
