package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/duskmux/wod20/internal/config"
	"github.com/duskmux/wod20/internal/domain/character"
	"github.com/duskmux/wod20/internal/repositories/characters"
)

func main() {
	characterID := flag.String("character", "", "print the XP ledger for one character")
	ownerID := flag.String("owner", "", "list all characters for an owner")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer client.Close()

	ctx := context.Background()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	repo := characters.NewRedisRepository(&characters.RedisRepoConfig{Client: client})

	switch {
	case *characterID != "":
		ch, err := repo.Get(ctx, *characterID)
		if err != nil {
			log.Fatalf("Failed to load character: %v", err)
		}
		printLedger(ch)

	case *ownerID != "":
		chars, err := repo.GetByOwner(ctx, *ownerID)
		if err != nil {
			log.Fatalf("Failed to list characters: %v", err)
		}
		fmt.Printf("Found %d characters for owner %s:\n", len(chars), *ownerID)
		for _, ch := range chars {
			fmt.Printf("  %s  %-20s %-10s current=%s spent=%s\n",
				ch.ID, ch.Name, ch.Splat, ch.XP.Current.String(), ch.XP.Spent.String())
		}

	default:
		keys, err := client.Keys(ctx, "character:*").Result()
		if err != nil {
			log.Fatalf("Failed to scan character keys: %v", err)
		}
		fmt.Printf("Found %d characters:\n", len(keys))
		for _, key := range keys {
			fmt.Printf("  %s\n", key)
		}
	}
}

func printLedger(ch *character.Character) {
	fmt.Printf("%s (%s, %s)\n", ch.Name, ch.ID, ch.Splat)
	fmt.Printf("  total=%s current=%s spent=%s\n",
		ch.XP.Total.String(), ch.XP.Current.String(), ch.XP.Spent.String())
	if err := ch.XP.CheckInvariant(); err != nil {
		fmt.Printf("  LEDGER DRIFT: %v\n", err)
	}

	fmt.Printf("  %d log entries (newest first):\n", len(ch.XP.Log))
	for _, entry := range ch.XP.Log {
		line := fmt.Sprintf("  %s  %-8s %6s XP", entry.Timestamp.Format("2006-01-02 15:04"), entry.Type, entry.Amount.String())
		if entry.TraitName != "" {
			line += fmt.Sprintf("  %s %d->%d", entry.TraitName, entry.PreviousRating, entry.NewRating)
		}
		if entry.Reason != "" {
			line += fmt.Sprintf("  (%s)", entry.Reason)
		}
		if entry.StaffName != "" {
			line += fmt.Sprintf("  by %s", entry.StaffName)
		}
		fmt.Println(line)
	}
}
