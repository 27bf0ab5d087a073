// Package batch executes confirmed batch deletions sequentially, tracking a
// per-item success/failure tally.
package batch

import (
	"github.com/southerncoder/jirasweep/pkg/logger"
)

var log = logger.New("batch")

// Item is one deletable entity, identified for the delete call and labeled
// for display.
type Item struct {
	ID   string
	Name string
}

// Outcome records the result of one delete attempt.
type Outcome struct {
	Item      Item
	Succeeded bool
}

// Result summarizes a batch run. When Cancelled is true no delete calls were
// issued and the counts are zero; otherwise Successful+Failed equals the
// number of items given to Run.
type Result struct {
	Cancelled  bool
	Successful int
	Failed     int
	Outcomes   []Outcome
}

// Run confirms and then deletes the given items in order.
//
// confirm is invoked once with the full list before anything is deleted; a
// false return aborts with zero side effects. After confirmation every item
// is attempted exactly once via deleteOne, in list order, regardless of
// earlier failures. Deletions already performed are never undone. A single
// item is simply a batch of size one.
func Run(items []Item, deleteOne func(Item) bool, confirm func([]Item) bool) Result {
	log.Printf("Starting batch run: %d item(s)", len(items))

	if !confirm(items) {
		log.Print("Batch cancelled at confirmation")
		return Result{Cancelled: true}
	}

	result := Result{Outcomes: make([]Outcome, 0, len(items))}
	for _, item := range items {
		ok := deleteOne(item)
		result.Outcomes = append(result.Outcomes, Outcome{Item: item, Succeeded: ok})
		if ok {
			result.Successful++
		} else {
			result.Failed++
			log.Printf("Delete failed: id=%s name=%q", item.ID, item.Name)
		}
	}

	log.Printf("Batch complete: %d succeeded, %d failed", result.Successful, result.Failed)
	return result
}
