package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
	"jamesfarrell.me/asktube/internal/config"
	"jamesfarrell.me/asktube/internal/locator"
	"jamesfarrell.me/asktube/internal/transcript"
	"jamesfarrell.me/asktube/internal/youtube"
)

// Runs the ask pipeline from the command line, no HTTP server involved.
// Handy for poking at prompts and transcripts while developing.
func main() {
	url := flag.String("url", "", "YouTube video URL")
	topic := flag.String("topic", "", "topic to locate in the video")
	flag.Parse()

	if *url == "" || *topic == "" {
		flag.Usage()
		os.Exit(2)
	}

	if err := godotenv.Load(); err != nil {
		log.Printf("Error loading .env file: %v\n", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	videoID, err := youtube.ExtractVideoID(*url)
	if err != nil {
		log.Fatalf("Bad URL: %v", err)
	}
	fmt.Printf("Video ID: %s\n", videoID)

	ctx := context.Background()
	segments, err := youtube.NewClient().FetchTranscript(ctx, videoID)
	if err != nil {
		log.Fatalf("Transcript fetch failed: %v", err)
	}
	fmt.Printf("Fetched %d transcript segments\n", len(segments))

	raw, err := locator.New(cfg.AIToken, cfg.ChatURL, cfg.Model).Locate(ctx, transcript.Format(segments), *topic)
	if err != nil {
		log.Fatalf("Locate failed: %v", err)
	}

	out, _ := json.Marshal(map[string]string{
		"timestamp": transcript.Normalize(raw),
		"video_url": *url,
		"topic":     *topic,
	})
	fmt.Println(string(out))
}
