package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/bacauscout/scout/go/internal/player"
)

func main() {
	path := "data/players.json"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	// 1) Load the corpus the same way the API does
	store, err := player.LoadStore(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load corpus: %v\n", err)
		os.Exit(1)
	}

	// 2) Tally coverage
	var (
		total     = store.Len()
		noID      int
		noAge     int
		noValue   int
		perLeague = make(map[string]int)
	)
	for _, p := range store.Players() {
		if p.PlayerID == "" {
			noID++
		}
		if p.AgeNum == nil {
			noAge++
		}
		if p.MarketValueNum == nil {
			noValue++
		}
		league := "(none)"
		if p.League != nil {
			league = *p.League
		}
		perLeague[league]++
	}

	fmt.Printf(
		"Corpus %s: players=%d skipped=%d no_id=%d no_age=%d no_value=%d\n",
		path, total, store.Skipped(), noID, noAge, noValue,
	)

	// 3) Largest leagues first
	leagues := make([]string, 0, len(perLeague))
	for l := range perLeague {
		leagues = append(leagues, l)
	}
	sort.Slice(leagues, func(i, j int) bool {
		if perLeague[leagues[i]] != perLeague[leagues[j]] {
			return perLeague[leagues[i]] > perLeague[leagues[j]]
		}
		return leagues[i] < leagues[j]
	})
	for _, l := range leagues {
		fmt.Printf("  %-30s %d\n", l, perLeague[l])
	}
}
