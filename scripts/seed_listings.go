package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

type seedListing struct {
	title    string
	city     string
	tags     string
	isActive bool
}

var seedListings = []seedListing{
	{"99新 Kindle Paperwhite 4", "上海", "电子书,阅读,数码", true},
	{"宜家书桌 自提", "上海", "家具, 书桌", true},
	{"飞利浦台灯", "北京", "灯具,护眼", true},
	{"山地自行车 9成新", "北京", "运动,自行车,户外", true},
	{"罗技 MX Master 3 鼠标", "广州", "数码,办公", true},
	{"全新瑜伽垫", "深圳", "运动,瑜伽", true},
	{"尼康 D750 单反", "杭州", "摄影,相机", true},
	{"旧吉他 适合新手", "", "乐器,吉他", true},
	{"下架的测试商品", "上海", "测试", false},
}

func main() {
	fmt.Println("seeding listings into database...")

	if err := godotenv.Load(); err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	dsn := os.Getenv("DB_DSN")

	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		log.Fatalf("cannot connect DB: %v", err)
	}
	defer pool.Close()

	query := `
		INSERT INTO listings (title, city, tags, is_active)
		VALUES ($1, NULLIF($2, ''), NULLIF($3, ''), $4)
	`
	for _, l := range seedListings {
		if _, err := pool.Exec(context.Background(), query, l.title, l.city, l.tags, l.isActive); err != nil {
			log.Fatalf("cannot insert listing '%s': %v", l.title, err)
		}
	}

	fmt.Printf("seeded %d listings successfully!\n", len(seedListings))
}
