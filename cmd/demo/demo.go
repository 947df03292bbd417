package main

import (
	"context"
	"fmt"
	"time"

	"tableflip.dev/picklist/pkg/app"
	"tableflip.dev/picklist/pkg/lists"
	"tableflip.dev/picklist/pkg/store"
)

func demoLists(now time.Time) []lists.Record {
	at := func(d time.Duration) lists.Timestamp {
		return lists.Timestamp{Time: now.Add(-d).Truncate(time.Second)}
	}
	return []lists.Record{
		{Name: "groceries", Description: "Weekly shop", Size: 14, Timestamp: at(2 * time.Hour), Tags: []string{"home", "food"}},
		{Name: "chores", Description: "Things the house needs", Size: 6, Timestamp: at(26 * time.Hour), Tags: []string{"home"}},
		{Name: "sprint backlog", Description: "Open tickets for this sprint", Size: 31, Timestamp: at(30 * time.Minute), Tags: []string{"work"}},
		{Name: "reading", Description: "Books to pick up next", Size: 9, Timestamp: at(72 * time.Hour), Tags: []string{"leisure"}},
		{Name: "travel", Description: "Packing for the trip", Size: 22, Timestamp: at(5 * time.Hour), Tags: []string{"leisure", "home"}},
		{Name: "ideas", Description: "Unsorted", Size: 3, Timestamp: at(200 * time.Hour)},
	}
}

func main() {
	cfg, err := store.LoadConfig()
	if err != nil {
		panic(err)
	}
	catalog, err := store.Load(cfg)
	if err != nil {
		panic(err)
	}

	svc := &app.Service{Store: catalog}
	saved, err := svc.Import(context.Background(), demoLists(time.Now()))
	if err != nil {
		panic(err)
	}

	for _, rec := range saved {
		fmt.Printf("%s\t%s\n", rec.ID, rec.Name)
	}
}
