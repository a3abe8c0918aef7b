package main

import "time"

// Step sequence position is persisted by the backend as an opaque
// timestamp-valued order key: ascending key order is the canonical step
// order. The gateway assigns keys, it never interprets them.

// orderedStep pairs a new step's name with its order key.
type orderedStep struct {
	Name  string `json:"name"`
	Order int64  `json:"order"`
}

// stepOrder pairs an existing step ID with its new order key, used for
// full-replacement reordering.
type stepOrder struct {
	ID    string `json:"id"`
	Order int64  `json:"order"`
}

// orderKeys returns n strictly increasing keys anchored at base. Position i
// always receives a greater key than position i-1; absolute values carry no
// meaning beyond relative order.
func orderKeys(n int, base time.Time) []int64 {
	keys := make([]int64, n)
	start := base.UnixMilli()
	for i := range keys {
		keys[i] = start + int64(i)
	}
	return keys
}

// orderedSteps assigns order keys to step names in caller order.
func orderedSteps(names []string, base time.Time) []orderedStep {
	keys := orderKeys(len(names), base)
	steps := make([]orderedStep, len(names))
	for i, name := range names {
		steps[i] = orderedStep{Name: name, Order: keys[i]}
	}
	return steps
}

// orderedIDs assigns order keys to existing step IDs in caller order.
func orderedIDs(ids []string, base time.Time) []stepOrder {
	keys := orderKeys(len(ids), base)
	orders := make([]stepOrder, len(ids))
	for i, id := range ids {
		orders[i] = stepOrder{ID: id, Order: keys[i]}
	}
	return orders
}
