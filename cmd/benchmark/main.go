package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/olgasafonova/wikipedia-mcp-server/wikipedia"
)

// newBenchClient builds a client from the environment. Pass zero ttl to turn
// response caching off so every call hits the network.
func newBenchClient(ttl time.Duration) (*wikipedia.Client, error) {
	config, err := wikipedia.LoadConfig()
	if err != nil {
		return nil, err
	}
	config.CacheTTL = ttl
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
	return wikipedia.NewFromConfig(config, logger), nil
}

// measureCachePerformance compares a cold call against a cached repeat
func measureCachePerformance() {
	client, err := newBenchClient(5 * time.Minute)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Cache Performance Test ===")
	fmt.Println()

	fmt.Println("1. Languages Cache Test:")

	start := time.Now()
	_, err = client.Languages(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	firstCall := time.Since(start)
	fmt.Printf("   First call (network):  %v\n", firstCall)

	start = time.Now()
	_, _ = client.Languages(ctx)
	secondCall := time.Since(start)
	fmt.Printf("   Second call (cached):  %v\n", secondCall)
	fmt.Printf("   Speedup: %.0fx faster\n", float64(firstCall)/float64(secondCall))
	fmt.Println()

	fmt.Println("2. Search Performance (cold call baseline):")
	start = time.Now()
	_, err = client.Search(ctx, "Go programming language")
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	fmt.Printf("   Search time: %v\n", time.Since(start))
	fmt.Println()
}

// measureConcurrentPerformance compares sequential page fetches against the
// same fetches running concurrently. Caching is off so both passes pay the
// network cost.
func measureConcurrentPerformance() {
	client, err := newBenchClient(0)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Concurrent vs Sequential Performance ===")
	fmt.Println()

	titles, err := client.Search(ctx, "solar system")
	if err != nil {
		fmt.Printf("Error searching for test pages: %v\n", err)
		return
	}
	if len(titles) > 3 {
		titles = titles[:3]
	}
	if len(titles) < 3 {
		fmt.Println("Not enough pages to test")
		return
	}

	fmt.Printf("Testing with %d pages: %v\n\n", len(titles), titles)

	fmt.Println("3. Sequential PageSummary:")
	start := time.Now()
	for _, title := range titles {
		_, _ = client.PageSummary(ctx, title)
	}
	sequentialTime := time.Since(start)
	fmt.Printf("   Sequential time for %d pages: %v\n", len(titles), sequentialTime)
	fmt.Println()

	fmt.Println("4. Concurrent PageSummary:")
	start = time.Now()
	var wg sync.WaitGroup
	for _, title := range titles {
		wg.Add(1)
		go func(title string) {
			defer wg.Done()
			_, _ = client.PageSummary(ctx, title)
		}(title)
	}
	wg.Wait()
	concurrentTime := time.Since(start)
	fmt.Printf("   Concurrent time for %d pages: %v\n", len(titles), concurrentTime)
	fmt.Printf("   Speedup: %.1fx faster\n", float64(sequentialTime)/float64(concurrentTime))
	fmt.Println()
}

// measureRequestCoalescing shows identical in-flight requests collapsing
// into one upstream fetch
func measureRequestCoalescing() {
	client, err := newBenchClient(0)
	if err != nil {
		fmt.Printf("Config error: %v\n", err)
		return
	}
	defer client.Close()
	ctx := context.Background()

	fmt.Println("=== Request Coalescing Test ===")
	fmt.Println()

	fmt.Println("5. Identical Concurrent Requests:")

	start := time.Now()
	_, err = client.Languages(ctx)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return
	}
	singleCall := time.Since(start)
	fmt.Printf("   One call:                  %v\n", singleCall)

	const workers = 8
	start = time.Now()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = client.Languages(ctx)
		}()
	}
	wg.Wait()
	coalescedTime := time.Since(start)
	fmt.Printf("   %d concurrent calls:        %v\n", workers, coalescedTime)
	fmt.Printf("   Cost per caller: %v (coalesced into one fetch)\n", coalescedTime/workers)
	fmt.Println()
}

func main() {
	fmt.Println("Wikipedia MCP Server - Performance Measurements")
	fmt.Println("================================================")
	fmt.Println()

	measureCachePerformance()
	measureConcurrentPerformance()
	measureRequestCoalescing()

	fmt.Println("=== Summary ===")
	fmt.Println()
	fmt.Println("Key behaviors:")
	fmt.Println("• Caching: Repeated requests are 100-1000x faster (memory vs network)")
	fmt.Println("• Concurrency: The client is safe for concurrent use; independent fetches overlap")
	fmt.Println("• Coalescing: Identical in-flight requests share a single upstream fetch")
	fmt.Println("• Connection reuse: HTTP/2 + connection pooling reduces latency")
}
