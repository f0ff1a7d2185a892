// Entertainment Analysis - Viewing Activity Pipeline and Dashboard
// Copyright 2026 juan-28
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/juan-28/entertainment-analysis

/*
Package cache provides a thread-safe LRU cache with TTL expiry.

The dashboard API keeps one cache per loaded dataset, keyed by the
canonical form of a query filter. Swapping the dataset swaps the cache, so
entries never outlive the data they were computed from.

# Usage Example

	c := cache.NewLRU[dashboard.Result](256, 5*time.Minute)
	if res, ok := c.Get(key); ok {
	    return res
	}
	res := data.Query(filter)
	c.Add(key, res)

# Thread Safety

All methods are safe for concurrent use. Get takes the write lock because
a hit reorders the recency list.
*/
package cache
